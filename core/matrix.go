// SPDX-License-Identifier: MIT

// Package core - Matrix views (row- or column-major, arbitrary leading dimension).
//
// Purpose:
//   - Describe a rows×cols window over a shared Buffer with an explicit major order.
//   - Provide the index formula for both orders from a single place:
//     RowMajor: off + i*ld + j,  ColMajor: off + j*ld + i.
//   - Support no-copy views (Sub, Row, Col, Major, T); mutations reflect in the base.
//
// AI-Hints:
//   - ld == MinorExtent() means the matrix is one contiguous run (elementwise fast path).
//   - Row(i) on a ColMajor matrix is strided by ld; Col(j) on a RowMajor one as well.
//   - T() is O(1): it flips the order flag and swaps dimensions, sharing storage.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) zero-init; At/Set: O(1); views: O(1); Values: O(r*c).

package core

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "Matrix.At"
	ctxSet        = "Matrix.Set"
	ctxSub        = "Matrix.Sub"
	ctxMajor      = "Matrix.Major"
	ctxRow        = "Matrix.Row"
	ctxCol        = "Matrix.Col"
	ctxT          = "Matrix.T"
	ctxMatRelease = "Matrix.Release"
	ctxNewMatrix  = "NewMatrix"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps an error with a uniform Matrix context and indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a strided rows×cols view over a shared Buffer.
//   - order picks which vectors are contiguous (rows or columns).
//   - ld is the buffer distance between consecutive major vectors.
//   - RowMajor requires ld >= cols, ColMajor requires ld >= rows.
type Matrix struct {
	rows, cols int     // logical shape (>= 0)
	ld         int     // leading dimension
	order      Order   // storage order
	buf        *Buffer // shared storage; nil once released
	off        int     // buffer index of element (0,0)
}

// NewMatrix allocates a zero-filled, contiguous rows×cols matrix.
// Stage 1 (Validate): non-negative dimensions and a known order.
// Stage 2 (Prepare): ld = minor extent (cols for RowMajor, rows for ColMajor).
// Stage 3 (Finalize): allocate the shared buffer with one reference.
//
// Errors: ErrBadShape.
// Complexity: O(r*c).
func NewMatrix(rows, cols int, order Order) (*Matrix, error) {
	ld := cols
	if order == ColMajor {
		ld = rows
	}

	return NewMatrixLD(rows, cols, ld, order)
}

// NewMatrixLD allocates a zero-filled matrix with an explicit leading
// dimension, leaving ld-minor padding slots after every major vector.
//
// Errors: ErrBadShape when dimensions are negative, the order is unknown or
// ld is smaller than the minor extent.
// Complexity: O(ld*majors).
func NewMatrixLD(rows, cols, ld int, order Order) (*Matrix, error) {
	if rows < 0 || cols < 0 || (order != RowMajor && order != ColMajor) {
		return nil, fmt.Errorf("%s(%d,%d,%s): %w", ctxNewMatrix, rows, cols, order, ErrBadShape)
	}
	majors, minor := rows, cols
	if order == ColMajor {
		majors, minor = cols, rows
	}
	if ld < minor {
		return nil, fmt.Errorf("%s: ld %d < %d: %w", ctxNewMatrix, ld, minor, ErrBadShape)
	}
	buf, err := NewBuffer(majors * ld)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewMatrix, err)
	}

	return &Matrix{rows: rows, cols: cols, ld: ld, order: order, buf: buf}, nil
}

// NewMatrixFrom copies logical rows into a new contiguous matrix stored in
// the requested order. All rows must share the same length.
//
// Errors: ErrBadShape for ragged input or unknown order.
// Complexity: O(r*c).
func NewMatrixFrom(rows [][]float64, order Order) (*Matrix, error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewMatrix(r, c, order)
	if err != nil {
		return nil, err
	}
	data := m.buf.Values()
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			_ = m.Release()
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxNewMatrix, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			data[m.offset(i, j)] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the logical row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the logical column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// LD returns the leading dimension.
func (m *Matrix) LD() int { return m.ld }

// Order returns the storage order.
func (m *Matrix) Order() Order { return m.order }

// Offset returns the buffer index of element (0,0).
func (m *Matrix) Offset() int { return m.off }

// Buffer returns the shared storage (nil after Release).
func (m *Matrix) Buffer() *Buffer { return m.buf }

// Released reports whether Release was already called on this view.
func (m *Matrix) Released() bool { return m.buf == nil }

// Majors returns the number of major vectors (rows for RowMajor, columns for ColMajor).
func (m *Matrix) Majors() int {
	if m.order == RowMajor {
		return m.rows
	}

	return m.cols
}

// MinorExtent returns the length of one major vector.
func (m *Matrix) MinorExtent() int {
	if m.order == RowMajor {
		return m.cols
	}

	return m.rows
}

// Contiguous reports whether the major vectors are packed back to back
// (ld equals the minor extent), so the whole matrix is a single run.
func (m *Matrix) Contiguous() bool { return m.ld == m.MinorExtent() }

// Release drops this view's reference on the buffer. A second call returns ErrReleased.
func (m *Matrix) Release() error {
	if m.buf == nil {
		return fmt.Errorf("%s: %w", ctxMatRelease, ErrReleased)
	}
	buf := m.buf
	m.buf = nil

	return buf.Release()
}

// Run exposes the buffer starting at element (0,0) for dispatch.
// Empty matrices yield nil.
func (m *Matrix) Run() []float64 {
	if m.buf == nil || m.rows == 0 || m.cols == 0 {
		return nil
	}

	return m.buf.Values()[m.off:]
}

// offset computes the buffer index of (i,j) without bounds checks.
func (m *Matrix) offset(i, j int) int {
	if m.order == RowMajor {
		return m.off + i*m.ld + j
	}

	return m.off + j*m.ld + i
}

// indexOf bounds-checks (i,j) and returns its buffer index.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if m.buf == nil {
		return 0, ErrReleased
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}

	return m.offset(i, j), nil
}

// At returns element (i,j) or ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	p, err := m.indexOf(i, j)
	if err != nil {
		return 0, matrixErrorf(ctxAt, i, j, err)
	}

	return m.buf.Values()[p], nil
}

// Set stores v at (i,j). The write is visible through every aliasing view.
func (m *Matrix) Set(i, j int, v float64) error {
	p, err := m.indexOf(i, j)
	if err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	m.buf.Values()[p] = v

	return nil
}

// Major returns an aliasing, contiguous view of major vector k.
//
// Errors: ErrReleased, ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Major(k int) (*Vector, error) {
	if m.buf == nil {
		return nil, fmt.Errorf("%s: %w", ctxMajor, ErrReleased)
	}
	if k < 0 || k >= m.Majors() {
		return nil, fmt.Errorf("%s(%d): %w", ctxMajor, k, ErrOutOfRange)
	}

	return newVectorView(m.buf, m.off+k*m.ld, m.MinorExtent(), 1), nil
}

// Row returns an aliasing view of logical row i: stride 1 for RowMajor,
// stride ld for ColMajor.
func (m *Matrix) Row(i int) (*Vector, error) {
	if m.buf == nil {
		return nil, fmt.Errorf("%s: %w", ctxRow, ErrReleased)
	}
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	if m.order == RowMajor {
		return newVectorView(m.buf, m.off+i*m.ld, m.cols, 1), nil
	}

	return newVectorView(m.buf, m.off+i, m.cols, m.ld), nil
}

// Col returns an aliasing view of logical column j: stride 1 for ColMajor,
// stride ld for RowMajor.
func (m *Matrix) Col(j int) (*Vector, error) {
	if m.buf == nil {
		return nil, fmt.Errorf("%s: %w", ctxCol, ErrReleased)
	}
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	if m.order == ColMajor {
		return newVectorView(m.buf, m.off+j*m.ld, m.rows, 1), nil
	}

	return newVectorView(m.buf, m.off+j, m.rows, m.ld), nil
}

// Sub creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// The window keeps the parent ld and order, so it is usually not contiguous.
//
// Errors: ErrReleased, ErrBadShape when the window does not fit.
// Complexity: O(1).
func (m *Matrix) Sub(r0, c0, rows, cols int) (*Matrix, error) {
	if m.buf == nil {
		return nil, fmt.Errorf("%s: %w", ctxSub, ErrReleased)
	}
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.rows || c0+cols > m.cols {
		return nil, fmt.Errorf("%s(%d,%d,%d,%d): %w", ctxSub, r0, c0, rows, cols, ErrBadShape)
	}
	off := m.off
	if rows > 0 && cols > 0 {
		off = m.offset(r0, c0)
	}

	return &Matrix{rows: rows, cols: cols, ld: m.ld, order: m.order, buf: m.buf.Acquire(), off: off}, nil
}

// T returns the transposed view: dimensions swapped, order flipped, same
// storage. Element (i,j) of T() is element (j,i) of m.
func (m *Matrix) T() (*Matrix, error) {
	if m.buf == nil {
		return nil, fmt.Errorf("%s: %w", ctxT, ErrReleased)
	}

	return &Matrix{rows: m.cols, cols: m.rows, ld: m.ld, order: m.order.Flip(), buf: m.buf.Acquire(), off: m.off}, nil
}

// Do visits each element (i,j) in logical row-major order and calls f(i,j,v).
// Stops early when f returns false. Released views are not visited.
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	if m.buf == nil {
		return
	}
	data := m.buf.Values()
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if !f(i, j, data[m.offset(i, j)]) {
				return
			}
		}
	}
}

// Values copies the matrix out as logical rows (nil once released).
func (m *Matrix) Values() [][]float64 {
	if m.buf == nil {
		return nil
	}
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
	}
	m.Do(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out
}

// String renders logical rows as lines with comma-separated values.
func (m *Matrix) String() string {
	if m.buf == nil {
		return "[released]\n"
	}
	var b strings.Builder
	for _, row := range m.Values() {
		b.WriteString(_fmtOpen)
		for j, v := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(fmt.Sprintf("%g", v))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
