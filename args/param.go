// SPDX-License-Identifier: MIT

// Package args: declarative descriptors for the trailing parameters of an operation.
//
// Purpose:
//   - Describe each trailing parameter once ({name, kind, default}) so that a
//     single generic parser serves every operation.
//   - Keep constructors strict: nonsensical descriptors are programmer errors
//     and panic with stable messages (no magic strings).
//
// AI-Hints:
//   - Declare descriptor lists as package-level vars next to the kernels that read them.
//   - The position of a descriptor in its list is the slot of its parsed Value.

package args

import "fmt"

// Kind is the type of a trailing parameter.
type Kind int

const (
	// None marks an unused Value slot.
	None Kind = iota
	// Number accepts any Go numeric value, parsed as float64.
	Number
	// Integer accepts Go integers or floats holding an exact integer.
	Integer
	// Enum accepts one string out of a fixed list of choices.
	Enum
	// DDoF is a degrees-of-freedom count d with 0 <= d < implied size.
	DDoF
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Enum:
		return "enum"
	case DDoF:
		return "ddof"
	default:
		return "none"
	}
}

// MaxParams is the capacity of a parsed Values array.
const MaxParams = 5

// ---------- Internal panic messages ----------

const (
	panicEnumEmpty    = "args: EnumParam: at least one choice required"
	panicDDoFNegative = "args: DDoFParam: default must be >= 0"
	panicTooMany      = "args: Parse: more than MaxParams descriptors"
)

// Param describes one trailing parameter and its default.
// Build it with NumberParam, IntegerParam, EnumParam or DDoFParam.
type Param struct {
	Name string
	Kind Kind

	number  float64  // Number default
	integer int64    // Integer default
	choices []string // Enum choices; choices[0] is the default
	ddof    int      // DDoF default
}

// NumberParam declares a float parameter with default def.
func NumberParam(name string, def float64) Param {
	return Param{Name: name, Kind: Number, number: def}
}

// IntegerParam declares an integer parameter with default def.
func IntegerParam(name string, def int64) Param {
	return Param{Name: name, Kind: Integer, integer: def}
}

// EnumParam declares an enumeration; the first choice is the default.
// Panics when choices is empty.
func EnumParam(name string, choices ...string) Param {
	if len(choices) == 0 {
		panic(panicEnumEmpty)
	}
	cp := make([]string, len(choices))
	copy(cp, choices)

	return Param{Name: name, Kind: Enum, choices: cp}
}

// DDoFParam declares a degrees-of-freedom parameter with default def.
// Panics when def < 0.
func DDoFParam(name string, def int) Param {
	if def < 0 {
		panic(panicDDoFNegative)
	}

	return Param{Name: name, Kind: DDoF, ddof: def}
}

// Choices returns the allowed enumeration values (nil for other kinds).
func (p Param) Choices() []string { return p.choices }

// def returns the default Value of p. A DDoF default is range-checked by the
// parser like any supplied value.
func (p Param) def() Value {
	switch p.Kind {
	case Number:
		return Value{kind: Number, n: p.number}
	case Integer:
		return Value{kind: Integer, i: p.integer}
	case Enum:
		return Value{kind: Enum, e: 0}
	case DDoF:
		return Value{kind: DDoF, d: p.ddof}
	}

	return Value{}
}

// String renders the descriptor, e.g. `alpha:number=1`.
func (p Param) String() string {
	switch p.Kind {
	case Number:
		return fmt.Sprintf("%s:%s=%g", p.Name, p.Kind, p.number)
	case Integer:
		return fmt.Sprintf("%s:%s=%d", p.Name, p.Kind, p.integer)
	case Enum:
		return fmt.Sprintf("%s:%s%v", p.Name, p.Kind, p.choices)
	case DDoF:
		return fmt.Sprintf("%s:%s=%d", p.Name, p.Kind, p.ddof)
	}

	return p.Name
}

// Value is one parsed parameter (a tagged union keyed by Kind).
type Value struct {
	kind Kind
	n    float64
	i    int64
	e    int
	d    int
}

// Kind reports which accessor carries the value.
func (v Value) Kind() Kind { return v.kind }

// Number returns the float of a Number value.
func (v Value) Number() float64 { return v.n }

// Integer returns the integer of an Integer value.
func (v Value) Integer() int64 { return v.i }

// Enum returns the index into the descriptor choices.
func (v Value) Enum() int { return v.e }

// DDoF returns the degrees-of-freedom count.
func (v Value) DDoF() int { return v.d }

// NumberValue builds a Number value directly (kernels invoked without parsing).
func NumberValue(x float64) Value { return Value{kind: Number, n: x} }

// DDoFValue builds a DDoF value directly.
func DDoFValue(d int) Value { return Value{kind: DDoF, d: d} }

// Values is the fixed-capacity result of Parse; slot k holds params[k].
type Values [MaxParams]Value

// Named is the optional trailing record of named overrides.
type Named map[string]any
