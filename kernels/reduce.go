// SPDX-License-Identifier: MIT
// Package: kernels
//
// Purpose:
//   - Reductions over one run (n, x, inc): sum, mean, variance, standard
//     deviation, Euclidean norm and absolute sum.
//
// Exposed API:
//   - Sum(run)        -> Σ x
//   - Mean(run)       -> Σ x / n
//   - Var(run, ddof)  -> Σ (x-mean)² / (n-ddof), two passes
//   - Std(run, ddof)  -> √Var
//   - Nrm2(run)       -> BLAS Dnrm2
//   - Asum(run)       -> BLAS Dasum
//
// Notes:
//   - Var with n == ddof divides by zero and yields Inf/NaN. The argument
//     parser rejects ddof >= n before a kernel ever runs.

package kernels

import "math"

// sum accumulates the run in index order.
func sum(n int, x []float64, inc int) float64 {
	var s float64
	if inc == 1 {
		for i := 0; i < n; i++ {
			s += x[i]
		}
		return s
	}
	for i, p := 0, 0; i < n; i, p = i+1, p+inc {
		s += x[p]
	}

	return s
}

// Sum returns the sum of the run.
func Sum(n int, x []float64, inc int, _ *Call) float64 {
	return sum(n, x, inc)
}

// Mean returns the arithmetic mean of the run (NaN for an empty run).
func Mean(n int, x []float64, inc int, _ *Call) float64 {
	return sum(n, x, inc) / float64(n)
}

// variance is the two-pass estimator divided by n-ddof.
func variance(n int, x []float64, inc, ddof int) float64 {
	mean := sum(n, x, inc) / float64(n)
	var s, d float64
	for i, p := 0, 0; i < n; i, p = i+1, p+inc {
		d = x[p] - mean
		s += d * d
	}

	return s / float64(n-ddof)
}

// Var returns the variance of the run with ddof (slot 0) degrees of freedom.
func Var(n int, x []float64, inc int, c *Call) float64 {
	return variance(n, x, inc, c.ddof())
}

// Std returns the standard deviation, √Var.
func Std(n int, x []float64, inc int, c *Call) float64 {
	return math.Sqrt(variance(n, x, inc, c.ddof()))
}

// Nrm2 returns the Euclidean norm through BLAS Dnrm2.
func Nrm2(n int, x []float64, inc int, c *Call) float64 {
	if n == 0 {
		return 0
	}

	return c.impl().Dnrm2(n, x, inc)
}

// Asum returns the sum of absolute values through BLAS Dasum.
func Asum(n int, x []float64, inc int, c *Call) float64 {
	if n == 0 {
		return 0
	}

	return c.impl().Dasum(n, x, inc)
}
