// SPDX-License-Identifier: MIT

package args

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/linear/core"
)

// Parse binds the trailing call arguments call[start:] to params.
// MAIN DESCRIPTION:
//   - One generic parser for every operation: positional values by index,
//     an optional trailing Named record for overrides, defaults otherwise.
//
// Implementation:
//   - Stage 1: split off the trailing Named record (if the last argument is one).
//   - Stage 2: reject surplus positional values and unknown named keys.
//   - Stage 3: for each descriptor pick named > positional > default and convert.
//
// Behavior highlights:
//   - nil positional values mean "use the default".
//   - Named lookup wins per field over the positional value at the same slot.
//   - DDoF values (defaults included) must satisfy 0 <= d < size.
//
// Inputs:
//   - call: full host argument list; start: index of the first trailing argument.
//   - size: implied size of the dimension being reduced (0 for elementwise ops).
//   - params: at most MaxParams descriptors.
//
// Errors:
//   - ErrArgumentType, ErrArgumentRange, ErrArgument (all wrapped with the parameter name).
//
// Complexity:
//   - Time O(len(call) + len(params) + k log k) for k named keys.
func Parse(call []any, start, size int, params []Param) (Values, error) {
	var out Values
	if len(params) > MaxParams {
		panic(panicTooMany)
	}

	// Stage 1: positional window and optional named record.
	var positional []any
	var named Named
	if start < len(call) {
		positional = call[start:]
		if rec, ok := asNamed(positional[len(positional)-1]); ok {
			named = rec
			positional = positional[:len(positional)-1]
		}
	}

	// Stage 2: structural checks.
	if len(positional) > len(params) {
		return out, fmt.Errorf("argument #%d: expected at most %d trailing arguments: %w",
			start+len(params), len(params), core.ErrArgument)
	}
	if err := checkNamed(named, params); err != nil {
		return out, err
	}

	// Stage 3: bind and convert.
	var (
		k   int
		p   Param
		raw any
		v   Value
		err error
	)
	for k, p = range params {
		raw = nil
		if k < len(positional) {
			raw = positional[k]
		}
		if nv, ok := named[p.Name]; ok && nv != nil {
			raw = nv
		}
		if raw == nil {
			v = p.def()
		} else if v, err = convert(p, raw); err != nil {
			return out, fmt.Errorf("argument %q: %w", p.Name, err)
		}
		if p.Kind == DDoF && (v.d < 0 || v.d >= size) {
			return out, fmt.Errorf("argument %q: ddof %d not in [0,%d): %w", p.Name, v.d, size, core.ErrArgumentRange)
		}
		out[k] = v
	}

	return out, nil
}

// asNamed recognises a trailing named record.
func asNamed(x any) (Named, bool) {
	switch rec := x.(type) {
	case Named:
		return rec, true
	case map[string]any:
		return Named(rec), true
	}

	return nil, false
}

// checkNamed rejects keys that match no descriptor. Keys are checked in
// sorted order so the reported key is deterministic.
func checkNamed(named Named, params []Param) error {
	if len(named) == 0 {
		return nil
	}
	keys := make([]string, 0, len(named))
	for key := range named {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var known bool
	for _, key := range keys {
		known = false
		for _, p := range params {
			if p.Name == key {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("argument %q: unknown named argument: %w", key, core.ErrArgument)
		}
	}

	return nil
}

// convert maps a raw host value onto the descriptor kind.
func convert(p Param, raw any) (Value, error) {
	switch p.Kind {
	case Number:
		n, ok := toNumber(raw)
		if !ok {
			return Value{}, fmt.Errorf("number expected, got %T: %w", raw, core.ErrArgumentType)
		}
		return Value{kind: Number, n: n}, nil

	case Integer:
		i, ok := toInteger(raw)
		if !ok {
			return Value{}, fmt.Errorf("integer expected, got %T: %w", raw, core.ErrArgumentType)
		}
		return Value{kind: Integer, i: i}, nil

	case Enum:
		s, ok := toString(raw)
		if ok {
			for idx, c := range p.choices {
				if c == s {
					return Value{kind: Enum, e: idx}, nil
				}
			}
		}
		return Value{}, fmt.Errorf("expected one of %v, got %v: %w", p.choices, raw, core.ErrArgumentType)

	case DDoF:
		i, ok := toInteger(raw)
		if !ok {
			return Value{}, fmt.Errorf("ddof expected, got %T: %w", raw, core.ErrArgumentType)
		}
		if i < 0 || i > math.MaxInt32 {
			return Value{}, fmt.Errorf("ddof %d: %w", i, core.ErrArgumentRange)
		}
		return Value{kind: DDoF, d: int(i)}, nil
	}

	return Value{}, fmt.Errorf("descriptor kind %s: %w", p.Kind, core.ErrArgumentType)
}

func toNumber(raw any) (float64, bool) {
	switch x := raw.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}

	return 0, false
}

// toInteger accepts Go integers and floats that hold an exact integer.
func toInteger(raw any) (int64, bool) {
	switch x := raw.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	case float32:
		return floatToInteger(float64(x))
	case float64:
		return floatToInteger(x)
	}

	return 0, false
}

func floatToInteger(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

// toString accepts strings and fmt.Stringer values (e.g. core.Order).
func toString(raw any) (string, bool) {
	switch x := raw.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	}

	return "", false
}
