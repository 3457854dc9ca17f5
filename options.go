// SPDX-License-Identifier: MIT

// Package linear: functional configuration for the Engine.
// This file defines:
//   - Option (functional options over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - WithSource wins over WithSeed when both are given.
//   - WithMaxRun is forwarded to dispatch.WithMaxRun.

package linear

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/linear/dispatch"
	"github.com/katalvlaran/linear/kernels"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed seeds the Engine generator when no WithSeed/WithSource is given.
	DefaultSeed = kernels.DefaultSeed

	// DefaultMaxRun is the elementwise fast-path limit (see dispatch.DefaultMaxRun).
	DefaultMaxRun = dispatch.DefaultMaxRun
)

const (
	panicNilSource     = "linear: WithSource: source must not be nil"
	panicNilBLAS       = "linear: WithBLAS: implementation must not be nil"
	panicMaxRunInvalid = "linear: WithMaxRun: limit must be >= 1"
)

// Option mutates internal Engine options. Last writer wins.
type Option func(*options)

type options struct {
	seed   uint64
	src    kernels.Source
	impl   blas.Float64
	log    zerolog.Logger
	maxRun int
}

// WithSeed seeds the Engine's own PCG generator.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithSource plugs a caller-supplied 32-bit source into the Engine generator.
// Panics on nil.
func WithSource(src kernels.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *options) { o.src = src }
}

// WithBLAS replaces the BLAS implementation behind Scal, Nrm2 and Asum.
// Panics on nil.
func WithBLAS(impl blas.Float64) Option {
	if impl == nil {
		panic(panicNilBLAS)
	}

	return func(o *options) { o.impl = impl }
}

// WithLogger routes engine and dispatch debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMaxRun caps the flattened run of the elementwise matrix fast path.
// Panics when n < 1.
func WithMaxRun(n int) Option {
	if n < 1 {
		panic(panicMaxRunInvalid)
	}

	return func(o *options) { o.maxRun = n }
}

func gatherOptions(user ...Option) options {
	o := options{
		seed:   DefaultSeed,
		log:    zerolog.Nop(),
		maxRun: DefaultMaxRun,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
