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

// Promise is the write side of one cell: a producer holds it, and resolves
// it exactly once with SetValue, SetError, or Set. Further resolution
// attempts panic (they're a contract violation, not part of the
// error-propagation taxonomy).
type Promise[T any] struct {
	c *cell[T]
}

// NewPromise returns a Promise backed by a fresh, pending cell.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{c: newCell[T]()}
}

// NewResolvedPromise returns a Promise whose cell is already resolved to v.
// Future, called on it, returns a Future that's ready immediately.
func NewResolvedPromise[T any](v T) *Promise[T] {
	return &Promise[T]{c: newResolvedCell[T](v)}
}

// Future returns the consumer handle for this Promise's cell. Passing an
// Executor binds it to the cell, so the first continuation attached to the
// returned Future (and, by inheritance, every continuation chained from
// it) runs on that Executor rather than inline.
//
// Future may be called more than once; every call returns a handle to the
// very same cell, so only one of them should ever be used to attach a
// continuation or call Get, per the single-callback-slot invariant.
func (p *Promise[T]) Future(executors ...Executor) Future[T] {
	if len(executors) > 0 && executors[0] != nil {
		p.c.mu.Lock()
		p.c.executor = executors[0]
		p.c.mu.Unlock()
	}
	return Future[T]{c: p.c}
}

// SetValue resolves this Promise's cell to v. Calling it on an
// already-resolved cell panics.
func (p *Promise[T]) SetValue(v T) {
	p.c.setValue(v)
}

// SetError resolves this Promise's cell to err. A nil err resolves to the
// zero value instead, matching Set's behavior for a callable that returns
// a nil error.
func (p *Promise[T]) SetError(err error) {
	if err == nil {
		p.c.setValue(*new(T))
		return
	}
	p.c.setErr(err)
}

// Set invokes f and publishes its result: a value if f returned a nil
// error, or the error otherwise. If f panics, the panic is captured and
// published as this Promise's error, it does not propagate to the caller
// of Set.
func (p *Promise[T]) Set(f func() (T, error)) {
	v, err := callCaptured(f)
	if err != nil {
		p.c.setErr(err)
		return
	}
	p.c.setValue(v)
}

// callCaptured runs f, turning any panic into an error instead of letting
// it escape, so Set's caller never sees a raw panic from a producer's
// callable.
func callCaptured[T any](f func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &recoveredPanic{v: r}
		}
	}()
	return f()
}
