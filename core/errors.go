// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every linear package.
// This file defines ONLY package-level sentinel errors. Operations return these
// sentinels (usually wrapped with an operation tag) and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linear: ..." so the host side can grep them
// regardless of which package raised the error. Wrap with
// fmt.Errorf("Op: %w", ErrX) when context is useful; errors.Is still matches.
//
// ERROR PRIORITY (checked in this order by dispatch):
//   - elementwise: trailing arguments -> operand kind -> released/nil view.
//   - reductions:  operand kind -> released/nil view -> output dimension -> trailing arguments.

var (
	// ErrType is returned when an operand is not one of the kinds an operation
	// accepts (e.g. a reduction invoked on a scalar or a string).
	ErrType = errors.New("linear: unsupported operand type")

	// ErrArgumentType is returned when a trailing argument has the wrong
	// runtime type for its descriptor, including enumeration values outside
	// the allowed set.
	ErrArgumentType = errors.New("linear: bad argument type")

	// ErrArgumentRange is returned when a trailing argument value is out of
	// the valid range (e.g. ddof >= length of the reduced dimension).
	ErrArgumentRange = errors.New("linear: argument out of range")

	// ErrArgument is returned for unrecognized named arguments and surplus
	// positional arguments.
	ErrArgument = errors.New("linear: bad argument")

	// ErrDimension is returned when an output or secondary operand does not
	// match the shape implied by the primary operand and axis.
	ErrDimension = errors.New("linear: dimension mismatch")

	// ErrBadShape is returned by factories when a requested shape, stride or
	// window is invalid.
	ErrBadShape = errors.New("linear: invalid shape")

	// ErrOutOfRange indicates an element index outside the view bounds.
	// Public indexers (At/Set) return it instead of panicking.
	ErrOutOfRange = errors.New("linear: index out of range")

	// ErrReleased is returned when a view or buffer is used after its last
	// reference was released.
	ErrReleased = errors.New("linear: released")

	// ErrNilView indicates that a nil *Vector or *Matrix was supplied.
	ErrNilView = errors.New("linear: nil view")
)
