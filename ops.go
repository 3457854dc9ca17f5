// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/linear/core"
)

// Operation names accepted by Engine.Call.
const (
	OpInc      = "inc"
	OpScal     = "scal"
	OpPow      = "pow"
	OpExp      = "exp"
	OpLog      = "log"
	OpSgn      = "sgn"
	OpAbs      = "abs"
	OpLogistic = "logistic"
	OpTanh     = "tanh"
	OpApply    = "apply"
	OpSet      = "set"
	OpUniform  = "uniform"
	OpNormal   = "normal"
	OpSum      = "sum"
	OpMean     = "mean"
	OpVar      = "var"
	OpStd      = "std"
	OpNrm2     = "nrm2"
	OpAsum     = "asum"
)

type method func(e *Engine, x any, extra ...any) (float64, error)

var registry = map[string]method{
	OpInc:      (*Engine).Inc,
	OpScal:     (*Engine).Scal,
	OpPow:      (*Engine).Pow,
	OpExp:      (*Engine).Exp,
	OpLog:      (*Engine).Log,
	OpSgn:      (*Engine).Sgn,
	OpAbs:      (*Engine).Abs,
	OpLogistic: (*Engine).Logistic,
	OpTanh:     (*Engine).Tanh,
	OpApply:    applyByName,
	OpSet:      (*Engine).Set,
	OpUniform:  (*Engine).Uniform,
	OpNormal:   (*Engine).Normal,
	OpSum:      (*Engine).Sum,
	OpMean:     (*Engine).Mean,
	OpVar:      (*Engine).Var,
	OpStd:      (*Engine).Std,
	OpNrm2:     (*Engine).Nrm2,
	OpAsum:     (*Engine).Asum,
}

// Names returns the operation names accepted by Call, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Call runs the operation registered under name. call[0] is the operand and
// the rest are the operation's trailing arguments, exactly as for the
// corresponding method. For "apply", call[1] is the function, either
// func(float64) (float64, error) or func(float64) float64.
//
// Errors: ErrUnknownOperation, core.ErrType for an empty call, then whatever
// the operation returns.
func (e *Engine) Call(name string, call ...any) (float64, error) {
	m, ok := registry[name]
	if !ok {
		return 0, e.fail(name, ErrUnknownOperation)
	}
	if len(call) == 0 {
		return 0, e.fail(name, fmt.Errorf("missing operand: %w", core.ErrType))
	}

	return m(e, call[0], call[1:]...)
}

// applyByName adapts the host layout (x, fn, extra...) to Engine.Apply.
func applyByName(e *Engine, x any, extra ...any) (float64, error) {
	var raw any
	if len(extra) > 0 {
		raw, extra = extra[0], extra[1:]
	}

	var fn func(float64) (float64, error)
	switch f := raw.(type) {
	case func(float64) (float64, error):
		fn = f
	case func(float64) float64:
		if f != nil {
			fn = func(v float64) (float64, error) { return f(v), nil }
		}
	}

	return e.Apply(x, fn, extra...)
}
