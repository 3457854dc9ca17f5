// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/linear/args"
	"github.com/katalvlaran/linear/core"
	"github.com/katalvlaran/linear/kernels"
)

const (
	opApply       = "Apply"
	opElementwise = "Elementwise"
)

// Apply runs an elementwise kernel over op.
// MAIN DESCRIPTION:
//   - Scalar: the kernel sees a one-element run; the transformed value is returned.
//   - Vector: one kernel call over (length, inc), in place; returns 0.
//   - Matrix: one flat run when contiguous and small enough, otherwise one
//     run per major vector at inc 1; returns 0.
//
// Behavior highlights:
//   - The flat/per-major choice never changes results: kernels are elementwise.
//   - A kernel error (only Apply's callback can fail) aborts immediately;
//     runs already processed stay mutated.
//
// Errors:
//   - ErrType for KindNone; validator errors for nil/released views;
//     kernel errors wrapped with the entry tag.
//
// Complexity:
//   - Time O(elements), Space O(1).
func (d *Dispatcher) Apply(f kernels.Elementwise, c *kernels.Call, op Operand) (float64, error) {
	switch op.kind {
	case KindScalar:
		x := [1]float64{op.x}
		if err := f(1, x[:], 1, c); err != nil {
			return 0, dispatchErrorf(opApply, err)
		}
		return x[0], nil

	case KindVector:
		if err := core.ValidateVector(op.v); err != nil {
			return 0, dispatchErrorf(opApply, err)
		}
		x, n, inc := op.v.Run()
		if err := f(n, x, inc, c); err != nil {
			return 0, dispatchErrorf(opApply, err)
		}
		return 0, nil

	case KindMatrix:
		if err := core.ValidateMatrix(op.m); err != nil {
			return 0, dispatchErrorf(opApply, err)
		}
		if err := d.applyMatrix(f, c, op.m); err != nil {
			return 0, dispatchErrorf(opApply, err)
		}
		return 0, nil
	}

	return 0, dispatchErrorf(opApply, fmt.Errorf("operand %s: %w", op.kind, core.ErrType))
}

// applyMatrix slices m into kernel runs.
// Stage 1: contiguous and majors*minor <= maxRun → single flat run, inc 1.
// Stage 2: otherwise one run per major vector, inc 1, stepping by ld.
func (d *Dispatcher) applyMatrix(f kernels.Elementwise, c *kernels.Call, m *core.Matrix) error {
	majors, minor, ld := m.Majors(), m.MinorExtent(), m.LD()
	if majors == 0 || minor == 0 {
		return nil
	}
	data := m.Run()

	total := majors * minor
	if m.Contiguous() && total <= d.opts.maxRun {
		d.opts.log.Debug().Str("path", "flat").Int("n", total).Stringer("order", m.Order()).Msg("elementwise matrix")
		return f(total, data, 1, c)
	}

	d.opts.log.Debug().Str("path", "major").Int("runs", majors).Int("n", minor).Int("ld", ld).
		Stringer("order", m.Order()).Msg("elementwise matrix")
	for k := 0; k < majors; k++ {
		if err := f(minor, data[k*ld:], 1, c); err != nil {
			return err
		}
	}

	return nil
}

// Elementwise parses a host call and applies f.
// Layout: call[0] is the operand; trailing parameters start at call[1]
// (implied size 0). The parsed values are stored into c.Args.
//
// Errors: argument errors from args.Parse, then everything Apply returns.
func (d *Dispatcher) Elementwise(f kernels.Elementwise, params []args.Param, call []any, c *kernels.Call) (float64, error) {
	parsed, err := args.Parse(call, 1, 0, params)
	if err != nil {
		return 0, dispatchErrorf(opElementwise, err)
	}
	if len(call) == 0 {
		return 0, dispatchErrorf(opElementwise, fmt.Errorf("missing operand: %w", core.ErrType))
	}
	op, err := OperandOf(call[0])
	if err != nil {
		return 0, dispatchErrorf(opElementwise, err)
	}
	if c == nil {
		c = &kernels.Call{}
	}
	c.Args = parsed

	return d.Apply(f, c, op)
}
