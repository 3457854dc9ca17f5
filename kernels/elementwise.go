// SPDX-License-Identifier: MIT
// Package: kernels
//
// Purpose:
//   - Elementwise micro-kernels over one run (n, x, inc), mutating in place.
//   - Keep loops deterministic: ascending index order, one pass.
//
// Determinism & Performance:
//   - inc == 1 takes a plain slice loop; other strides step a cursor.
//   - Pow short-circuits exponents -1, 0, 0.5 and 1.
//
// AI-Hints:
//   - Kernels trust their run: dispatch guarantees x holds (n-1)*inc+1 values.

package kernels

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linear/core"
)

// each replaces every element of the run with f(element).
func each(n int, x []float64, inc int, f func(float64) float64) {
	if inc == 1 {
		for i := 0; i < n; i++ {
			x[i] = f(x[i])
		}
		return
	}
	for i, p := 0, 0; i < n; i, p = i+1, p+inc {
		x[p] = f(x[p])
	}
}

// Inc adds alpha (slot 0) to every element.
func Inc(n int, x []float64, inc int, c *Call) error {
	alpha := c.alpha()
	if inc == 1 {
		for i := 0; i < n; i++ {
			x[i] += alpha
		}
		return nil
	}
	for i, p := 0, 0; i < n; i, p = i+1, p+inc {
		x[p] += alpha
	}

	return nil
}

// Scal multiplies every element by alpha (slot 0) through BLAS Dscal.
func Scal(n int, x []float64, inc int, c *Call) error {
	if n == 0 {
		return nil
	}
	c.impl().Dscal(n, c.alpha(), x, inc)

	return nil
}

// Pow raises every element to alpha (slot 0).
func Pow(n int, x []float64, inc int, c *Call) error {
	alpha := c.alpha()
	switch alpha {
	case -1:
		each(n, x, inc, func(v float64) float64 { return 1 / v })
	case 0:
		each(n, x, inc, func(float64) float64 { return 1 })
	case 0.5:
		each(n, x, inc, math.Sqrt)
	case 1:
		// identity
	default:
		each(n, x, inc, func(v float64) float64 { return math.Pow(v, alpha) })
	}

	return nil
}

// Exp replaces every element with e^x.
func Exp(n int, x []float64, inc int, _ *Call) error {
	each(n, x, inc, math.Exp)
	return nil
}

// Log replaces every element with its natural logarithm.
func Log(n int, x []float64, inc int, _ *Call) error {
	each(n, x, inc, math.Log)
	return nil
}

// Sgn maps positives to 1 and negatives to -1; zeros and NaN are kept.
func Sgn(n int, x []float64, inc int, _ *Call) error {
	each(n, x, inc, func(v float64) float64 {
		if v > 0 {
			return 1
		} else if v < 0 {
			return -1
		}
		return v
	})

	return nil
}

// Abs replaces every element with its absolute value.
func Abs(n int, x []float64, inc int, _ *Call) error {
	each(n, x, inc, math.Abs)
	return nil
}

// Logistic applies 1/(1+e^-x).
func Logistic(n int, x []float64, inc int, _ *Call) error {
	each(n, x, inc, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
	return nil
}

// Tanh applies the hyperbolic tangent.
func Tanh(n int, x []float64, inc int, _ *Call) error {
	each(n, x, inc, math.Tanh)
	return nil
}

// Apply calls c.Fn once per element in ascending index order and stores the
// result before moving on. The first callback error aborts the run; elements
// before it stay transformed.
func Apply(n int, x []float64, inc int, c *Call) error {
	if c == nil || c.Fn == nil {
		return fmt.Errorf("Apply: nil callback: %w", core.ErrArgumentType)
	}
	var (
		v   float64
		err error
	)
	for i, p := 0, 0; i < n; i, p = i+1, p+inc {
		if v, err = c.Fn(x[p]); err != nil {
			return fmt.Errorf("Apply: element %d: %w", i, err)
		}
		x[p] = v
	}

	return nil
}

// Set stores alpha (slot 0) in every element.
func Set(n int, x []float64, inc int, c *Call) error {
	alpha := c.alpha()
	if inc == 1 {
		for i := 0; i < n; i++ {
			x[i] = alpha
		}
		return nil
	}
	for i, p := 0, 0; i < n; i, p = i+1, p+inc {
		x[p] = alpha
	}

	return nil
}

// Uniform fills the run with draws from [0,1).
func Uniform(n int, x []float64, inc int, c *Call) error {
	r := c.rng()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := 0, 0; i < n; i, p = i+1, p+inc {
		x[p] = r.unit()
	}

	return nil
}

// Normal fills the run with standard normal draws (Box–Muller).
// Every pair of uniform draws yields two values; an odd tail consumes one
// more pair and keeps only the cosine output.
func Normal(n int, x []float64, inc int, c *Call) error {
	r := c.rng()
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		i, p       int
		u1, u2, rr float64
		s, co      float64
	)
	for i, p = 0, 0; i < n-1; i, p = i+2, p+2*inc {
		u1, u2 = r.open(), r.open()
		rr = math.Sqrt(-2 * math.Log(u1))
		s, co = math.Sincos(2 * math.Pi * u2)
		x[p] = rr * co
		x[p+inc] = rr * s
	}
	if i < n {
		u1, u2 = r.open(), r.open()
		x[p] = math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	}

	return nil
}
