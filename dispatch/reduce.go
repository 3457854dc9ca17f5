// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/linear/args"
	"github.com/katalvlaran/linear/core"
	"github.com/katalvlaran/linear/kernels"
)

const (
	opReduce = "Reduce"
	opUnary  = "Unary"
)

// axisParams declares the axis selector of matrix reductions.
var axisParams = []args.Param{args.EnumParam("order", core.OrderChoices...)}

// extent returns, for axis, how many results a reduction of m produces and
// how long each reduced run is.
//   - RowMajor axis: one result per row, each over cols elements.
//   - ColMajor axis: one result per column, each over rows elements.
func extent(m *core.Matrix, axis core.Order) (count, size int) {
	if axis == core.RowMajor {
		return m.Rows(), m.Cols()
	}

	return m.Cols(), m.Rows()
}

// Reduce runs a reduction kernel over op.
// MAIN DESCRIPTION:
//   - Vector: one kernel call over the full run; the result is returned.
//   - Matrix: one kernel call per row (axis RowMajor) or per column (axis
//     ColMajor); result i is written to out[i] honoring out's stride; returns 0.
//
// Implementation (matrix):
//   - Stage 1: validate m and out; len(out) must equal the result count.
//   - Stage 2: pick the run layout from storage order × axis:
//     order == axis → runs are major vectors (start i*ld, inc 1);
//     order != axis → runs cut across major vectors (start i, inc ld).
//   - Stage 3: write f(run_i) into out.
//
// Errors:
//   - ErrType (scalar or empty operand), ErrDimension (nil or mismatched out),
//     validator errors for nil/released views.
//
// Complexity:
//   - Time O(rows*cols), Space O(1).
func (d *Dispatcher) Reduce(f kernels.Reduction, c *kernels.Call, op Operand, axis core.Order, out *core.Vector) (float64, error) {
	switch op.kind {
	case KindVector:
		if err := core.ValidateVector(op.v); err != nil {
			return 0, dispatchErrorf(opReduce, err)
		}
		x, n, inc := op.v.Run()
		return f(n, x, inc, c), nil

	case KindMatrix:
		if err := core.ValidateMatrix(op.m); err != nil {
			return 0, dispatchErrorf(opReduce, err)
		}
		if out == nil {
			return 0, dispatchErrorf(opReduce, fmt.Errorf("nil output vector: %w", core.ErrDimension))
		}
		if err := core.ValidateVector(out); err != nil {
			return 0, dispatchErrorf(opReduce, err)
		}
		count, _ := extent(op.m, axis)
		if err := core.ValidateLength(out, count); err != nil {
			return 0, dispatchErrorf(opReduce, err)
		}
		d.reduceMatrix(f, c, op.m, axis, out)
		return 0, nil
	}

	return 0, dispatchErrorf(opReduce, fmt.Errorf("operand %s: %w", op.kind, core.ErrType))
}

// reduceMatrix fills out with one kernel result per row or column of m.
func (d *Dispatcher) reduceMatrix(f kernels.Reduction, c *kernels.Call, m *core.Matrix, axis core.Order, out *core.Vector) {
	count, size := extent(m, axis)
	data := m.Run()
	y, _, yinc := out.Run()

	// order == axis: the reduced runs are the major vectors themselves.
	step, inner := 1, m.LD()
	if m.Order() == axis {
		step, inner = m.LD(), 1
	}
	d.opts.log.Debug().Stringer("axis", axis).Stringer("order", m.Order()).
		Int("runs", count).Int("n", size).Int("inc", inner).Msg("reduce matrix")

	var run []float64
	for i := 0; i < count; i++ {
		run = nil
		if size > 0 {
			run = data[i*step:]
		}
		y[i*yinc] = f(size, run, inner, c)
	}
}

// Unary parses a host call and applies the reduction f.
// Layouts:
//   - (vector, params...)              → returns the reduction; implied size = length.
//   - (matrix, out, [order], params...) → fills out; order is "row" (default)
//     or "col"; implied size = length of each reduced run.
//
// A Named record in the order slot is taken as the trailing record, so the
// order may be omitted while still passing named parameters.
//
// Errors: ErrType for a bad operand or a non-vector output, ErrDimension
// for a mismatched output (checked before parameters), argument errors.
func (d *Dispatcher) Unary(f kernels.Reduction, params []args.Param, call []any, c *kernels.Call) (float64, error) {
	if len(call) == 0 {
		return 0, dispatchErrorf(opUnary, fmt.Errorf("missing operand: %w", core.ErrType))
	}
	if c == nil {
		c = &kernels.Call{}
	}
	op, err := OperandOf(call[0])
	if err != nil {
		return 0, dispatchErrorf(opUnary, err)
	}

	switch op.kind {
	case KindVector:
		if err = core.ValidateVector(op.v); err != nil {
			return 0, dispatchErrorf(opUnary, err)
		}
		if c.Args, err = args.Parse(call, 1, op.v.Len(), params); err != nil {
			return 0, dispatchErrorf(opUnary, err)
		}
		return d.Reduce(f, c, op, core.RowMajor, nil)

	case KindMatrix:
		if err = core.ValidateMatrix(op.m); err != nil {
			return 0, dispatchErrorf(opUnary, err)
		}
		var out *core.Vector
		if len(call) > 1 {
			out, _ = call[1].(*core.Vector)
		}
		if out == nil {
			return 0, dispatchErrorf(opUnary, fmt.Errorf("argument #1: output vector expected: %w", core.ErrType))
		}
		axis, start, err := parseAxis(call)
		if err != nil {
			return 0, dispatchErrorf(opUnary, err)
		}
		count, size := extent(op.m, axis)
		if err = core.ValidateVector(out); err != nil {
			return 0, dispatchErrorf(opUnary, err)
		}
		if err = core.ValidateLength(out, count); err != nil {
			return 0, dispatchErrorf(opUnary, err)
		}
		if c.Args, err = args.Parse(call, start, size, params); err != nil {
			return 0, dispatchErrorf(opUnary, err)
		}
		return d.Reduce(f, c, op, axis, out)
	}

	return 0, dispatchErrorf(opUnary, fmt.Errorf("operand %s: %w", op.kind, core.ErrType))
}

// parseAxis reads the order selector at call[2] and returns the index where
// the trailing parameters start.
func parseAxis(call []any) (core.Order, int, error) {
	var raw any
	start := 3
	if len(call) > 2 {
		raw = call[2]
		switch raw.(type) {
		case args.Named, map[string]any:
			raw, start = nil, 2
		}
	}
	parsed, err := args.Parse([]any{raw}, 0, 0, axisParams)
	if err != nil {
		return core.RowMajor, 0, err
	}
	if parsed[0].Enum() == 1 {
		return core.ColMajor, start, nil
	}

	return core.RowMajor, start, nil
}
