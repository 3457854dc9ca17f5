// SPDX-License-Identifier: MIT
// Package core - Vector views over shared buffers.
//
// Purpose:
//   - Describe a strided run (length, inc) starting at an offset into a Buffer.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//   - Support no-copy sub-views (Sub) that alias the parent storage.
//
// AI-Hints:
//   - Kernels consume Run() directly; element access through At/Set is for hosts and tests.
//   - Always pair a factory with `defer v.Release()`.

package core

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxVecAt      = "Vector.At"
	ctxVecSet     = "Vector.Set"
	ctxVecSub     = "Vector.Sub"
	ctxVecRelease = "Vector.Release"
	ctxNewVector  = "NewVector"
)

// Vector is a strided view of length n over a shared Buffer.
//   - element i lives at buf.values[off + i*inc].
//   - inc >= 1; the last element lies inside the buffer (factory invariant).
type Vector struct {
	n   int     // logical length (>= 0)
	inc int     // distance between consecutive elements (>= 1)
	buf *Buffer // shared storage; nil once released
	off int     // index of element 0 in buf
}

// NewVector allocates a zero-filled vector of length n with its own buffer.
// Returns ErrBadShape when n < 0.
func NewVector(n int) (*Vector, error) {
	buf, err := NewBuffer(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewVector, err)
	}

	return &Vector{n: n, inc: 1, buf: buf}, nil
}

// NewVectorFrom allocates a contiguous vector holding a copy of values.
func NewVectorFrom(values []float64) *Vector {
	cp := make([]float64, len(values))
	copy(cp, values)

	return &Vector{n: len(cp), inc: 1, buf: newBuffer(cp)}
}

// newVectorView builds an aliasing view and takes a reference on buf.
// Callers guarantee the layout fits inside buf.
func newVectorView(buf *Buffer, off, n, inc int) *Vector {
	return &Vector{n: n, inc: inc, buf: buf.Acquire(), off: off}
}

// Len returns the logical length.
func (v *Vector) Len() int { return v.n }

// Inc returns the distance between consecutive elements in the buffer.
func (v *Vector) Inc() int { return v.inc }

// Offset returns the buffer index of element 0.
func (v *Vector) Offset() int { return v.off }

// Buffer returns the shared storage (nil after Release).
func (v *Vector) Buffer() *Buffer { return v.buf }

// Released reports whether Release was already called on this view.
func (v *Vector) Released() bool { return v.buf == nil }

// Release drops this view's reference on the buffer. The view is unusable
// afterwards; a second call returns ErrReleased.
func (v *Vector) Release() error {
	if v.buf == nil {
		return fmt.Errorf("%s: %w", ctxVecRelease, ErrReleased)
	}
	buf := v.buf
	v.buf = nil

	return buf.Release()
}

// Run exposes the kernel view of the vector: x[0], x[inc], ..., x[(n-1)*inc].
// The slice aliases the buffer starting at the view offset. An empty view
// yields a nil run: its offset may sit past the end of the buffer.
func (v *Vector) Run() (x []float64, n, inc int) {
	if v.buf == nil || v.n == 0 {
		return nil, 0, v.inc
	}

	return v.buf.Values()[v.off:], v.n, v.inc
}

// index validates i and returns its buffer position.
func (v *Vector) index(i int) (int, error) {
	if v.buf == nil {
		return 0, ErrReleased
	}
	if i < 0 || i >= v.n {
		return 0, ErrOutOfRange
	}

	return v.off + i*v.inc, nil
}

// At returns element i.
func (v *Vector) At(i int) (float64, error) {
	p, err := v.index(i)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", ctxVecAt, i, err)
	}

	return v.buf.Values()[p], nil
}

// Set stores x at element i. The write is visible through every view
// sharing the buffer.
func (v *Vector) Set(i int, x float64) error {
	p, err := v.index(i)
	if err != nil {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, i, err)
	}
	v.buf.Values()[p] = x

	return nil
}

// Values copies the elements out in logical order (nil once released).
func (v *Vector) Values() []float64 {
	if v.buf == nil {
		return nil
	}
	data := v.buf.Values()
	out := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = data[v.off+i*v.inc]
	}

	return out
}

// Sub returns an aliasing view of elements [start, start+length).
// The sub-view keeps the parent stride and holds its own buffer reference.
//
// Errors: ErrReleased, ErrBadShape for an invalid window.
// Complexity: O(1).
func (v *Vector) Sub(start, length int) (*Vector, error) {
	if v.buf == nil {
		return nil, fmt.Errorf("%s: %w", ctxVecSub, ErrReleased)
	}
	if start < 0 || length < 0 || start+length > v.n {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxVecSub, start, length, ErrBadShape)
	}

	return newVectorView(v.buf, v.off+start*v.inc, length, v.inc), nil
}

// String renders the vector as "[a, b, c]".
func (v *Vector) String() string {
	if v.buf == nil {
		return "[released]"
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.Values() {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
