// SPDX-License-Identifier: MIT

package kernels

import (
	"math"
	"math/rand/v2"
	"sync"
)

// DefaultSeed seeds the process-wide generator returned by Default.
const DefaultSeed uint64 = 1

// pcgStream is the fixed PCG increment paired with every seed.
const pcgStream uint64 = 0xda3e39cb94b95bdb

// randScale maps a 32-bit draw u onto [0,1) as u/randScale.
const randScale = float64(math.MaxUint32) + 1

// Source produces uniform 32-bit draws. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uint32() uint32
}

// Rand is an injectable, seedable generator shared by Uniform and Normal.
// A mutex guards the source so one Rand may serve several goroutines; each
// kernel run holds the lock for the whole run, keeping its draws contiguous.
type Rand struct {
	mu  sync.Mutex
	src Source
}

// NewRand returns a PCG-backed generator seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{src: pcg(seed)}
}

// NewRandSource wraps a caller-supplied source.
func NewRandSource(src Source) *Rand {
	return &Rand{src: src}
}

func pcg(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// Seed resets the generator to a fresh PCG state for seed.
func (r *Rand) Seed(seed uint64) {
	r.mu.Lock()
	r.src = pcg(seed)
	r.mu.Unlock()
}

// Float64 returns one draw in [0,1).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.unit()
}

// unit maps a draw onto [0,1). Caller holds mu.
func (r *Rand) unit() float64 {
	return float64(r.src.Uint32()) / randScale
}

// open maps a draw onto (0,1], safe as a log argument. Caller holds mu.
func (r *Rand) open() float64 {
	return (float64(r.src.Uint32()) + 1) / randScale
}

var (
	defaultOnce sync.Once
	defaultRand *Rand
)

// Default returns the process-wide generator used when a Call carries none.
func Default() *Rand {
	defaultOnce.Do(func() { defaultRand = NewRand(DefaultSeed) })

	return defaultRand
}
