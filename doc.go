// SPDX-License-Identifier: MIT

// Package linear is a numeric core for vectors and matrices of float64 that
// live in shared, reference-counted buffers.
//
// What is inside?
//
//	core      Buffer, Vector and Matrix views (row/col-major, leading dimension)
//	args      declarative argument descriptors + one generic parser
//	kernels   elementwise and reduction kernels over (n, x, inc) runs
//	dispatch  scalar/vector/matrix routing, fast path vs per-major runs
//	config    TOML configuration and session scripts
//
// The Engine in this package ties them together: it owns the random
// generator, the BLAS implementation and the logger, and exposes one method
// per operation. Every operation accepts a number, a *core.Vector or a
// *core.Matrix:
//
//	e := linear.New(linear.WithSeed(7))
//	v := core.NewVectorFrom([]float64{1, 2, 3, 4})
//	sum, _ := e.Sum(v)                      // 10
//	_, _ = e.Pow(v, 2)                      // in place: [1, 4, 9, 16]
//	sd, _ := e.Std(v, args.Named{"ddof": 1})
//
// Matrix reductions write one result per row (default) or per column into a
// caller-provided vector:
//
//	m, _ := core.NewMatrixFrom([][]float64{{1, 2, 3}, {4, 5, 6}}, core.RowMajor)
//	out, _ := core.NewVector(2)
//	_, _ = e.Sum(m, out)                    // out = [6, 15]
//
// Views share storage; writing through one is visible through every other
// view of the same buffer. Operations run synchronously on the caller's
// goroutine.
package linear
