// SPDX-License-Identifier: MIT

// Package dispatch: functional configuration for the Dispatcher.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state; the logger is injected.
//   - No dead switches: each option changes observable behavior and is tested.

package dispatch

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

// DefaultMaxRun is the largest run length handed to a kernel in one call.
// It mirrors the 32-bit size argument of conventional BLAS interfaces: a
// contiguous matrix with more elements is iterated per major vector instead.
const DefaultMaxRun = math.MaxInt32

// ---------- Internal panic messages ----------

const panicMaxRunInvalid = "dispatch: WithMaxRun: limit must be >= 1"

// Option mutates internal options. Last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxRun int            // DefaultMaxRun
	log    zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithMaxRun caps the flattened run length of the elementwise fast path.
// Matrices with more elements than n fall back to one run per major vector;
// results are identical either way.
//
// Panics when n < 1 (programmer error).
func WithMaxRun(n int) Option {
	if n < 1 {
		panic(panicMaxRunInvalid)
	}

	return func(o *Options) { o.maxRun = n }
}

// WithLogger routes dispatch debug events (iteration path, axis) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxRun: DefaultMaxRun,
		log:    zerolog.Nop(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
