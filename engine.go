// SPDX-License-Identifier: MIT

package linear

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/linear/args"
	"github.com/katalvlaran/linear/core"
	"github.com/katalvlaran/linear/dispatch"
	"github.com/katalvlaran/linear/kernels"
)

// ErrUnknownOperation is returned by Engine.Call for a name not in Names().
var ErrUnknownOperation = errors.New("linear: unknown operation")

// Engine binds the dispatcher to its collaborators: the random generator,
// the BLAS implementation and the logger. Every operation runs to completion
// on the caller's goroutine.
type Engine struct {
	d    *dispatch.Dispatcher
	rng  *kernels.Rand
	impl blas.Float64
	log  zerolog.Logger
}

// New builds an Engine. Without options it uses DefaultSeed, gonum's native
// BLAS, a no-op logger and DefaultMaxRun.
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)

	rng := kernels.NewRand(o.seed)
	if o.src != nil {
		rng = kernels.NewRandSource(o.src)
	}
	impl := o.impl
	if impl == nil {
		impl = blas64.Implementation()
	}

	return &Engine{
		d:    dispatch.New(dispatch.WithMaxRun(o.maxRun), dispatch.WithLogger(o.log)),
		rng:  rng,
		impl: impl,
		log:  o.log,
	}
}

// Rand returns the Engine generator (shared by Uniform and Normal).
func (e *Engine) Rand() *kernels.Rand { return e.rng }

// Seed reseeds the Engine generator.
func (e *Engine) Seed(seed uint64) { e.rng.Seed(seed) }

// Dispatcher exposes the underlying dispatcher for callers that parse their
// own arguments.
func (e *Engine) Dispatcher() *dispatch.Dispatcher { return e.d }

func (e *Engine) newCall() *kernels.Call {
	return &kernels.Call{Rand: e.rng, BLAS: e.impl}
}

// fail logs a failed operation and tags err with its name.
func (e *Engine) fail(name string, err error) error {
	e.log.Debug().Str("op", name).Err(err).Msg("operation failed")

	return fmt.Errorf("%s: %w", name, err)
}

func (e *Engine) elementwise(name string, f kernels.Elementwise, params []args.Param, c *kernels.Call, x any, extra []any) (float64, error) {
	call := make([]any, 0, 1+len(extra))
	call = append(call, x)
	call = append(call, extra...)
	r, err := e.d.Elementwise(f, params, call, c)
	if err != nil {
		return 0, e.fail(name, err)
	}

	return r, nil
}

func (e *Engine) unary(name string, f kernels.Reduction, params []args.Param, x any, extra []any) (float64, error) {
	call := make([]any, 0, 1+len(extra))
	call = append(call, x)
	call = append(call, extra...)
	r, err := e.d.Unary(f, params, call, e.newCall())
	if err != nil {
		return 0, e.fail(name, err)
	}

	return r, nil
}

// ---------- Elementwise operations ----------
//
// x is a number, *core.Vector or *core.Matrix. For a number the transformed
// value is returned; views are mutated in place and 0 is returned.
// extra holds trailing parameters, positionally and/or as a final args.Named.

// Inc adds alpha (default 1) to every element.
func (e *Engine) Inc(x any, extra ...any) (float64, error) {
	return e.elementwise(OpInc, kernels.Inc, kernels.ParamsAlpha, e.newCall(), x, extra)
}

// Scal multiplies every element by alpha (default 1) via BLAS.
func (e *Engine) Scal(x any, extra ...any) (float64, error) {
	return e.elementwise(OpScal, kernels.Scal, kernels.ParamsAlpha, e.newCall(), x, extra)
}

// Pow raises every element to alpha (default 1).
func (e *Engine) Pow(x any, extra ...any) (float64, error) {
	return e.elementwise(OpPow, kernels.Pow, kernels.ParamsAlpha, e.newCall(), x, extra)
}

// Exp applies e^x.
func (e *Engine) Exp(x any, extra ...any) (float64, error) {
	return e.elementwise(OpExp, kernels.Exp, kernels.ParamsNone, e.newCall(), x, extra)
}

// Log applies the natural logarithm.
func (e *Engine) Log(x any, extra ...any) (float64, error) {
	return e.elementwise(OpLog, kernels.Log, kernels.ParamsNone, e.newCall(), x, extra)
}

// Sgn maps elements to -1, 0 or 1.
func (e *Engine) Sgn(x any, extra ...any) (float64, error) {
	return e.elementwise(OpSgn, kernels.Sgn, kernels.ParamsNone, e.newCall(), x, extra)
}

// Abs applies the absolute value.
func (e *Engine) Abs(x any, extra ...any) (float64, error) {
	return e.elementwise(OpAbs, kernels.Abs, kernels.ParamsNone, e.newCall(), x, extra)
}

// Logistic applies 1/(1+e^-x).
func (e *Engine) Logistic(x any, extra ...any) (float64, error) {
	return e.elementwise(OpLogistic, kernels.Logistic, kernels.ParamsNone, e.newCall(), x, extra)
}

// Tanh applies the hyperbolic tangent.
func (e *Engine) Tanh(x any, extra ...any) (float64, error) {
	return e.elementwise(OpTanh, kernels.Tanh, kernels.ParamsNone, e.newCall(), x, extra)
}

// Apply replaces every element v with fn(v), in ascending index order
// (row by row in storage order for matrices). An error from fn aborts the
// operation; elements already visited keep their new values.
func (e *Engine) Apply(x any, fn func(float64) (float64, error), extra ...any) (float64, error) {
	if fn == nil {
		return 0, e.fail(OpApply, fmt.Errorf("argument #1: function expected: %w", core.ErrArgumentType))
	}
	c := e.newCall()
	c.Fn = fn

	return e.elementwise(OpApply, kernels.Apply, kernels.ParamsNone, c, x, extra)
}

// Set stores alpha (default 1) in every element.
func (e *Engine) Set(x any, extra ...any) (float64, error) {
	return e.elementwise(OpSet, kernels.Set, kernels.ParamsAlpha, e.newCall(), x, extra)
}

// Uniform fills with draws from [0,1).
func (e *Engine) Uniform(x any, extra ...any) (float64, error) {
	return e.elementwise(OpUniform, kernels.Uniform, kernels.ParamsNone, e.newCall(), x, extra)
}

// Normal fills with standard normal draws.
func (e *Engine) Normal(x any, extra ...any) (float64, error) {
	return e.elementwise(OpNormal, kernels.Normal, kernels.ParamsNone, e.newCall(), x, extra)
}

// ---------- Reductions ----------
//
// For a *core.Vector x the result is returned. For a *core.Matrix x, extra
// starts with the output *core.Vector and an optional order ("row" default:
// one result per row; "col": one per column), followed by the parameters.

// Sum returns Σx.
func (e *Engine) Sum(x any, extra ...any) (float64, error) {
	return e.unary(OpSum, kernels.Sum, kernels.ParamsNone, x, extra)
}

// Mean returns Σx/n.
func (e *Engine) Mean(x any, extra ...any) (float64, error) {
	return e.unary(OpMean, kernels.Mean, kernels.ParamsNone, x, extra)
}

// Var returns the variance with ddof (default 0) degrees of freedom.
func (e *Engine) Var(x any, extra ...any) (float64, error) {
	return e.unary(OpVar, kernels.Var, kernels.ParamsDDoF, x, extra)
}

// Std returns the standard deviation with ddof (default 0).
func (e *Engine) Std(x any, extra ...any) (float64, error) {
	return e.unary(OpStd, kernels.Std, kernels.ParamsDDoF, x, extra)
}

// Nrm2 returns the Euclidean norm via BLAS.
func (e *Engine) Nrm2(x any, extra ...any) (float64, error) {
	return e.unary(OpNrm2, kernels.Nrm2, kernels.ParamsNone, x, extra)
}

// Asum returns the sum of absolute values via BLAS.
func (e *Engine) Asum(x any, extra ...any) (float64, error) {
	return e.unary(OpAsum, kernels.Asum, kernels.ParamsNone, x, extra)
}
