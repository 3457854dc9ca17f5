// SPDX-License-Identifier: MIT

package core

import "fmt"

// Order selects the storage layout of a matrix, and doubles as the axis
// selector for reductions ("row": one result per row, "col": one per column).
type Order int

const (
	// RowMajor stores rows contiguously; the major vector is a row.
	RowMajor Order = iota
	// ColMajor stores columns contiguously; the major vector is a column.
	ColMajor
)

// Textual forms used by hosts and the argument protocol.
const (
	OrderRow = "row"
	OrderCol = "col"
)

// OrderChoices lists the textual forms in enum order (first is the default).
var OrderChoices = []string{OrderRow, OrderCol}

// String returns "row" or "col".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return OrderRow
	case ColMajor:
		return OrderCol
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Flip returns the opposite order.
func (o Order) Flip() Order {
	if o == RowMajor {
		return ColMajor
	}

	return RowMajor
}

// ParseOrder maps "row"/"col" to an Order.
// Returns ErrArgumentType for any other string.
func ParseOrder(s string) (Order, error) {
	switch s {
	case OrderRow:
		return RowMajor, nil
	case OrderCol:
		return ColMajor, nil
	}

	return RowMajor, fmt.Errorf("ParseOrder(%q): expected one of %v: %w", s, OrderChoices, ErrArgumentType)
}
