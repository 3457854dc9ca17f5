// SPDX-License-Identifier: MIT
// Package: core
//
// Purpose:
//  - Provide a single, canonical source of truth for view checks used by dispatch.
//  - Keep kernels minimal by delegating nil/released/layout checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Alive → Layout.

package core

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVector ensures v is non-nil, not released, and its last element
// lies inside the buffer.
//
// Errors: ErrNilView, ErrReleased, ErrBadShape.
// Complexity: O(1).
func ValidateVector(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVector", ErrNilView)
	}
	if v.buf == nil {
		return validatorErrorf("ValidateVector", ErrReleased)
	}
	if v.inc < 1 || v.n < 0 {
		return validatorErrorf("ValidateVector", ErrBadShape)
	}
	if v.n > 0 && v.off+(v.n-1)*v.inc >= v.buf.Len() {
		return validatorErrorf("ValidateVector", ErrBadShape)
	}

	return nil
}

// ValidateMatrix ensures m is non-nil, not released, honours the
// leading-dimension invariant of its order, and that its last element lies
// inside the buffer.
//
// Errors: ErrNilView, ErrReleased, ErrBadShape.
// Complexity: O(1).
func ValidateMatrix(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateMatrix", ErrNilView)
	}
	if m.buf == nil {
		return validatorErrorf("ValidateMatrix", ErrReleased)
	}
	if m.rows < 0 || m.cols < 0 || m.ld < m.MinorExtent() {
		return validatorErrorf("ValidateMatrix", ErrBadShape)
	}
	if m.rows > 0 && m.cols > 0 && m.offset(m.rows-1, m.cols-1) >= m.buf.Len() {
		return validatorErrorf("ValidateMatrix", ErrBadShape)
	}

	return nil
}

// ValidateLength ensures the vector length matches n.
// Assumes v passed ValidateVector.
//
// Errors: ErrDimension.
func ValidateLength(v *Vector, n int) error {
	if v.n != n {
		return validatorErrorf("ValidateLength", fmt.Errorf("length %d, want %d: %w", v.n, n, ErrDimension))
	}

	return nil
}
