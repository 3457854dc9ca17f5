// SPDX-License-Identifier: MIT

// Package kernels implements the numeric kernels of linear: elementwise
// transforms that mutate one run in place, and reductions that fold one run
// into a float64.
//
// A run is the BLAS-style triple (n, x, inc): the elements x[0], x[inc], ...,
// x[(n-1)*inc]. Kernels never see views or operands; dispatch slices views
// into runs and calls the kernel once per run.
//
// Per-call state travels in an explicit *Call: the parsed trailing arguments,
// the callback of Apply, the random generator and the BLAS implementation.
// No kernel reads global state other than the Default generator fallback.
package kernels

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/linear/args"
)

// Elementwise transforms the run (n, x, inc) in place.
// Only kernels that invoke caller code (Apply) return a non-nil error.
type Elementwise func(n int, x []float64, inc int, c *Call) error

// Reduction folds the run (n, x, inc) into one value.
type Reduction func(n int, x []float64, inc int, c *Call) float64

// Call carries everything a kernel may need beyond its run.
type Call struct {
	// Args holds the parsed trailing parameters, slot k for descriptor k.
	Args args.Values

	// Fn is the unary callback of Apply.
	Fn func(float64) (float64, error)

	// Rand feeds Uniform and Normal; nil selects Default().
	Rand *Rand

	// BLAS backs Scal, Nrm2 and Asum; nil selects blas64.Implementation().
	BLAS blas.Float64
}

// NewCall returns a Call with the given parsed arguments and default collaborators.
func NewCall(a args.Values) *Call {
	return &Call{Args: a}
}

func (c *Call) rng() *Rand {
	if c == nil || c.Rand == nil {
		return Default()
	}

	return c.Rand
}

func (c *Call) impl() blas.Float64 {
	if c == nil || c.BLAS == nil {
		return blas64.Implementation()
	}

	return c.BLAS
}

// alpha reads the Number parameter in slot 0.
func (c *Call) alpha() float64 { return c.Args[0].Number() }

// ddof reads the DDoF parameter in slot 0.
func (c *Call) ddof() int { return c.Args[0].DDoF() }

// ---------- Parameter lists ----------

var (
	// ParamsNone declares no trailing parameters.
	ParamsNone = []args.Param{}

	// ParamsAlpha declares a single `alpha` number defaulting to 1.
	ParamsAlpha = []args.Param{args.NumberParam("alpha", 1)}

	// ParamsDDoF declares a single `ddof` count defaulting to 0.
	ParamsDDoF = []args.Param{args.DDoFParam("ddof", 0)}
)
