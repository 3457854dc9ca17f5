// SPDX-License-Identifier: MIT

// Package core provides the storage and view primitives of linear:
// reference-counted buffers and the strided vector/matrix views over them.
//
// The model separates ownership from shape:
//
//   - Buffer owns a flat []float64 and a reference count. It never knows a shape.
//   - Vector is (length, inc, offset) over a Buffer.
//   - Matrix is (rows, cols, ld, order, offset) over a Buffer, row- or column-major.
//
// Every view holds exactly one buffer reference. Factories (NewVector,
// NewMatrix, ...) create a buffer with one reference; view constructors (Sub,
// Row, Col, Major, T) acquire another one. Release drops it, and the values
// are freed when the last view goes away:
//
//	m, _ := core.NewMatrixFrom([][]float64{{1, 2, 3}, {4, 5, 6}}, core.RowMajor)
//	defer m.Release()
//	row, _ := m.Row(1) // aliases m, stride 1
//	defer row.Release()
//	_ = row.Set(0, 40) // m.At(1, 0) now reads 40
//
// Aliasing is intentional: two views over the same buffer observe each
// other's writes. Reference counting is atomic; concurrent mutation of the
// values is left to the caller.
//
// Errors:
//
//	ErrType, ErrArgumentType, ErrArgumentRange, ErrArgument, ErrDimension
//	    - raised by argument parsing and dispatch (shared here so every
//	      package reports the same sentinels).
//	ErrBadShape, ErrOutOfRange, ErrReleased, ErrNilView
//	    - raised by factories, indexers and validators.
package core
