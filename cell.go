// Copyright 2020 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package promise

import (
	"sync"

	"github.com/concurrent-go/promise/internal/trace"
)

// cellState is the tagged union a cell carries: pending, value, or error.
// The order matters for the zero value: a freshly allocated cell is
// cellPending without needing an explicit initializer.
type cellState uint8

const (
	cellPending cellState = iota
	cellValue
	cellError
)

// cell is the shared resolution state behind one link of a chain. It is
// never reused: Then and Error each allocate a fresh downstream cell.
//
// A cell is resolved exactly once (I1); callback is installed at most once,
// and only while state is pending (I2); done is closed exactly once, by
// whichever of setValue/setErr/resolve wins the race to resolve the cell,
// and is what a blocking waiter (Get or Wait) receives from instead of
// polling state directly. Downstream cells are driven by callback, not by
// done.
type cell[T any] struct {
	mu sync.Mutex

	state cellState
	value T
	err   *errorCapture

	// callback is the single continuation attached by a downstream cell.
	// It is cleared immediately after firing, so it never fires twice.
	callback func()

	// executor determines where callback runs when this cell resolves.
	// nil means inline, on the resolving goroutine.
	executor Executor

	// consumed is set the first time Get is called on a Future over this
	// cell. A second Get is a contract violation (double-get).
	consumed bool

	// done is closed exactly once, when the cell resolves. Get and Wait
	// block on it; there is no separate condition variable. A downstream
	// cell's dispatch goes through callback instead.
	done chan struct{}
}

func newCell[T any]() *cell[T] {
	return &cell[T]{done: make(chan struct{})}
}

// newResolvedCell returns a cell that is already in the value state, for
// producers constructed already-resolved, and for the ready unit cell Via
// starts a chain from.
func newResolvedCell[T any](v T) *cell[T] {
	c := &cell[T]{state: cellValue, value: v, done: make(chan struct{})}
	close(c.done)
	return c
}

// isPending reports whether the cell has not yet resolved, without taking
// the lock's happens-before guarantee for anything beyond this snapshot.
func (c *cell[T]) isPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == cellPending
}

func (c *cell[T]) hasValue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == cellValue
}

func (c *cell[T]) hasError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == cellError
}

// setValue publishes v as this cell's result. It is the producer-side half
// of the resolution protocol in spec.md §4.1: lock, store, unlock, signal,
// fire. Calling it on an already-resolved cell is a contract violation.
func (c *cell[T]) setValue(v T) {
	c.resolve(cellValue, v, nil)
}

// setErr publishes err as this cell's result.
func (c *cell[T]) setErr(err error) {
	c.resolve(cellError, *new(T), newErrorCapture(err))
}

func (c *cell[T]) resolve(state cellState, v T, err *errorCapture) {
	c.mu.Lock()
	if c.state != cellPending {
		c.mu.Unlock()
		panic(alreadyResolvedMsg)
	}
	c.state = state
	c.value = v
	c.err = err
	cb := c.callback
	c.callback = nil
	exec := c.executor
	c.mu.Unlock()

	trace.Tracef("cell resolved to %v (err=%v)", state, err)

	// close(done) and firing the callback both happen after releasing the
	// mutex: the callback may attach further continuations, take other
	// cells' locks, or submit to an executor, all of which would be
	// deadlock-prone under the publisher's own lock.
	close(c.done)

	if cb == nil {
		return
	}
	if exec != nil {
		exec.Submit(cb)
	} else {
		cb()
	}
}

// attach installs fn as this cell's callback. If the cell is already
// resolved, fn runs immediately, tail-call style, on the calling goroutine
// (or through the bound executor) with no extra scheduling. Otherwise fn
// is stashed until resolve fires it.
//
// attach must only be called once per cell: a second call silently
// replaces the pending callback, which violates the single-callback-slot
// invariant (I2) and is a contract violation left undefined by design
// (spec.md §9, "Single callback slot").
func (c *cell[T]) attach(fn func()) {
	c.mu.Lock()
	if c.state == cellPending {
		c.callback = fn
		c.mu.Unlock()
		return
	}
	exec := c.executor
	c.mu.Unlock()

	if exec != nil {
		exec.Submit(fn)
	} else {
		fn()
	}
}

// snapshot returns the cell's resolved value/error pair. It must only be
// called after the cell is known to be resolved (after <-c.done, or while
// c.state != cellPending under the lock).
func (c *cell[T]) snapshot() (T, *errorCapture) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.err
}
