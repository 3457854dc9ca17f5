// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const ctxBufRelease = "Buffer.Release"

const panicAcquireDead = "core: Buffer.Acquire: buffer already released"

// Buffer is reference-counted storage of float64 values.
// It owns the memory, never the shape: vectors and matrices are views that
// hold one reference each. Writes through one view are visible through every
// other view over the same Buffer.
type Buffer struct {
	values []float64
	refs   atomic.Int64
	mu     sync.Mutex // guards values on the final release
}

// NewBuffer allocates a zero-filled buffer of n values with one reference.
// Returns ErrBadShape when n < 0.
func NewBuffer(n int) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBuffer(%d): %w", n, ErrBadShape)
	}

	return newBuffer(make([]float64, n)), nil
}

// newBuffer adopts values (no copy) with refcount 1.
func newBuffer(values []float64) *Buffer {
	b := &Buffer{values: values}
	b.refs.Store(1)

	return b
}

// Acquire adds a reference and returns the same storage handle.
// No values are copied. Panics when the buffer is already dead: a released
// buffer cannot be revived.
func (b *Buffer) Acquire() *Buffer {
	for {
		n := b.refs.Load()
		if n <= 0 {
			panic(panicAcquireDead)
		}
		if b.refs.CompareAndSwap(n, n+1) {
			return b
		}
	}
}

// Release drops one reference and frees the values when the count hits zero.
// Releasing an already dead buffer returns ErrReleased and leaves the count at zero.
func (b *Buffer) Release() error {
	n := b.refs.Add(-1)
	if n < 0 {
		b.refs.Store(0)
		return fmt.Errorf("%s: %w", ctxBufRelease, ErrReleased)
	}
	if n == 0 {
		b.mu.Lock()
		b.values = nil
		b.mu.Unlock()
	}

	return nil
}

// Refs reports the number of live references.
func (b *Buffer) Refs() int { return int(b.refs.Load()) }

// Alive reports whether at least one reference is held.
func (b *Buffer) Alive() bool { return b.refs.Load() > 0 }

// Len returns the number of stored values (0 once freed).
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.values)
}

// Values returns the live backing slice. The slice aliases the buffer; it
// becomes stale once the last reference is released.
func (b *Buffer) Values() []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.values
}
