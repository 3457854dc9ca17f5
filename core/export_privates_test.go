// SPDX-License-Identifier: MIT

package core

// Test-Bridge (White-Box) for raw view construction.
//
// Purpose:
//   - Let core_test build views that no public factory produces (e.g. an
//     offset pointing past the buffer) to exercise the validators.

// NewMatrixRaw_TestOnly builds a Matrix header over buf without any checks.
// It takes a buffer reference like every other view.
func NewMatrixRaw_TestOnly(buf *Buffer, off, rows, cols, ld int, order Order) *Matrix {
	return &Matrix{rows: rows, cols: cols, ld: ld, order: order, buf: buf.Acquire(), off: off}
}

// NewVectorRaw_TestOnly builds a Vector header over buf without any checks.
func NewVectorRaw_TestOnly(buf *Buffer, off, n, inc int) *Vector {
	return newVectorView(buf, off, n, inc)
}
