// SPDX-License-Identifier: MIT

// Package dispatch routes numeric kernels over scalars, vector views and
// matrix views.
//
// Two entry points per kernel family:
//
//   - Apply / Reduce take an already parsed *kernels.Call and an Operand.
//   - Elementwise / Unary take a raw host call ([]any), parse the trailing
//     arguments with the args protocol and then call Apply / Reduce.
//
// Matrices are sliced into runs according to their storage order and leading
// dimension; kernels only ever see (n, x, inc).
package dispatch

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Dispatcher holds the dispatch configuration. It is stateless between calls
// and safe for concurrent use when the operands are not shared.
type Dispatcher struct {
	opts Options
}

// New returns a Dispatcher configured by opts.
func New(opts ...Option) *Dispatcher {
	return &Dispatcher{opts: gatherOptions(opts...)}
}

// MaxRun returns the effective fast-path run limit.
func (d *Dispatcher) MaxRun() int { return d.opts.maxRun }

// Logger returns the configured logger.
func (d *Dispatcher) Logger() zerolog.Logger { return d.opts.log }

// dispatchErrorf tags err with the dispatch entry point.
func dispatchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
