// SPDX-License-Identifier: MIT

package linear

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose the effective option values to linear_test without widening the API.
//   - Compiled only with the package tests (_test.go suffix).

// OptionsSnapshot is a read-only copy of the effective Engine options.
type OptionsSnapshot struct {
	Seed      uint64
	HasSource bool
	HasBLAS   bool
	MaxRun    int
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Seed:      o.seed,
		HasSource: o.src != nil,
		HasBLAS:   o.impl != nil,
		MaxRun:    o.maxRun,
	}
}

// MaxRunOf_TestOnly reports the run limit the Engine handed to its dispatcher.
func MaxRunOf_TestOnly(e *Engine) int { return e.d.MaxRun() }
