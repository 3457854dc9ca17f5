// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/linear/core"
)

// Kind names the active variant of an Operand.
type Kind int

const (
	// KindNone is the zero Operand; every dispatch rejects it with ErrType.
	KindNone Kind = iota
	// KindScalar holds a single float64.
	KindScalar
	// KindVector holds a *core.Vector.
	KindVector
	// KindMatrix holds a *core.Matrix.
	KindMatrix
)

// String returns the variant name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "none"
	}
}

// Operand is the sum type {Scalar, Vector, Matrix} every dispatch matches on.
type Operand struct {
	kind Kind
	x    float64
	v    *core.Vector
	m    *core.Matrix
}

// Scalar wraps a number.
func Scalar(x float64) Operand { return Operand{kind: KindScalar, x: x} }

// Vec wraps a vector view.
func Vec(v *core.Vector) Operand { return Operand{kind: KindVector, v: v} }

// Mat wraps a matrix view.
func Mat(m *core.Matrix) Operand { return Operand{kind: KindMatrix, m: m} }

// Kind reports the active variant.
func (o Operand) Kind() Kind { return o.kind }

// Scalar returns the number of a KindScalar operand.
func (o Operand) Scalar() float64 { return o.x }

// Vector returns the view of a KindVector operand.
func (o Operand) Vector() *core.Vector { return o.v }

// Matrix returns the view of a KindMatrix operand.
func (o Operand) Matrix() *core.Matrix { return o.m }

// OperandOf maps a host value onto the sum type.
// Accepted: Go numeric types (scalar), *core.Vector, *core.Matrix, Operand.
//
// Errors: ErrType for anything else, including nil.
func OperandOf(x any) (Operand, error) {
	switch t := x.(type) {
	case Operand:
		return t, nil
	case *core.Vector:
		return Vec(t), nil
	case *core.Matrix:
		return Mat(t), nil
	case float64:
		return Scalar(t), nil
	case float32:
		return Scalar(float64(t)), nil
	case int:
		return Scalar(float64(t)), nil
	case int32:
		return Scalar(float64(t)), nil
	case int64:
		return Scalar(float64(t)), nil
	case uint32:
		return Scalar(float64(t)), nil
	case uint64:
		return Scalar(float64(t)), nil
	}

	return Operand{}, fmt.Errorf("OperandOf(%T): %w", x, core.ErrType)
}
