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

// Future is the read side of one cell. It offers blocking retrieval,
// readiness queries, and the two chain operations, Then and Error (plus
// their Future-returning variants, ThenFuture and ErrorFuture).
//
// Each chain operation consumes no state on the Future itself; it reads
// the underlying cell and returns a brand new Future over a freshly
// allocated downstream cell.
type Future[T any] struct {
	c *cell[T]
}

// Wait blocks until the Future's cell resolves, then returns, without
// consuming the handle: unlike Get, Wait may be called any number of
// times, and does not disturb a later Get or chain call.
func (f Future[T]) Wait() {
	<-f.c.done
}

// IsReady reports whether the cell has resolved yet, without blocking.
func (f Future[T]) IsReady() bool {
	return !f.c.isPending()
}

// HasValue reports whether the cell has resolved to a value. Like IsReady,
// it's a non-blocking snapshot: on a pending cell it returns false rather
// than waiting for resolution.
func (f Future[T]) HasValue() bool {
	return f.c.hasValue()
}

// HasError reports whether the cell has resolved to an error. Like
// IsReady, it's a non-blocking snapshot: on a pending cell it returns
// false rather than waiting for resolution.
func (f Future[T]) HasError() bool {
	return f.c.hasError()
}

// Get blocks until the cell resolves, then returns its value and error.
// Calling Get a second time on the same Future value is a contract
// violation and panics; spec.md calls this double-get.
func (f Future[T]) Get() (T, error) {
	f.c.mu.Lock()
	if f.c.consumed {
		f.c.mu.Unlock()
		panic(alreadyConsumedMsg)
	}
	f.c.consumed = true
	f.c.mu.Unlock()

	<-f.c.done
	v, err := f.c.snapshot()
	if err != nil {
		return v, err
	}
	return v, nil
}

// Via rebinds this cell's executor and returns the same Future for
// chaining. It affects only the continuation attached next to this cell,
// not continuations already attached upstream, and not the upstream
// cell's own executor.
func (f Future[T]) Via(e Executor) Future[T] {
	f.c.mu.Lock()
	f.c.executor = e
	f.c.mu.Unlock()
	return f
}

// downstream allocates the next cell in the chain, inheriting this cell's
// executor so a chain started with one Via call keeps running on the same
// Executor without repeating it at every step.
func downstream[T, U any](upstream *cell[T]) *cell[U] {
	d := newCell[U]()
	upstream.mu.Lock()
	d.executor = upstream.executor
	upstream.mu.Unlock()
	return d
}

// Then attaches a value-transform. cb runs when this cell resolves to a
// value, with that value; its return becomes the downstream cell's value.
// If this cell resolves to an error, cb never runs and the error is
// forwarded unchanged: Then is strictly value-path. A panic inside cb is
// captured and published as the downstream cell's error.
func (f Future[T]) Then(cb func(T) T) Future[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	d := downstream[T, T](f.c)
	f.c.attach(func() {
		v, err := f.c.snapshot()
		if err != nil {
			d.setErr(err)
			return
		}
		runCaptured(d, func() (T, error) { return cb(v), nil })
	})
	return Future[T]{c: d}
}

// ThenFuture is Then for a continuation that itself returns a Future: the
// downstream cell resolves to the inner Future's value type, not a
// future-of-a-future, by attaching a continuation to the returned Future
// that forwards its value or error into the downstream cell.
func (f Future[T]) ThenFuture(cb func(T) Future[T]) Future[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	d := downstream[T, T](f.c)
	f.c.attach(func() {
		v, err := f.c.snapshot()
		if err != nil {
			d.setErr(err)
			return
		}
		forward(d, func() (Future[T], error) { return cb(v), nil })
	})
	return Future[T]{c: d}
}

// Error attaches an untyped error-recovery handler. cb runs when this cell
// resolves to an error, with the captured error; its return becomes the
// downstream cell's value. If this cell resolves to a value, cb never
// runs and the value is forwarded unchanged: Error is strictly
// error-path, the mirror image of Then.
func (f Future[T]) Error(cb func(error) T) Future[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	d := downstream[T, T](f.c)
	f.c.attach(func() {
		v, err := f.c.snapshot()
		if err == nil {
			d.setValue(v)
			return
		}
		runCaptured(d, func() (T, error) { return cb(err), nil })
	})
	return Future[T]{c: d}
}

// ErrorFuture is Error for a handler that itself returns a Future.
func (f Future[T]) ErrorFuture(cb func(error) Future[T]) Future[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	d := downstream[T, T](f.c)
	f.c.attach(func() {
		v, err := f.c.snapshot()
		if err == nil {
			d.setValue(v)
			return
		}
		forward(d, func() (Future[T], error) { return cb(err), nil })
	})
	return Future[T]{c: d}
}

// runCaptured calls f and resolves d with its result, capturing any panic
// as d's error instead of letting it unwind past the callback.
func runCaptured[T any](d *cell[T], f func() (T, error)) {
	v, err := callCaptured(f)
	if err != nil {
		d.setErr(err)
		return
	}
	d.setValue(v)
}

// forward calls f, which returns a nested Future, and wires that Future's
// eventual resolution into d: a panic inside f is captured the same way
// runCaptured does, a panic or error from the nested Future's own chain
// becomes d's error.
func forward[T any](d *cell[T], f func() (Future[T], error)) {
	inner, err := callCaptured(f)
	if err != nil {
		d.setErr(err)
		return
	}
	inner.c.attach(func() {
		v, ierr := inner.c.snapshot()
		if ierr != nil {
			d.setErr(ierr)
			return
		}
		d.setValue(v)
	})
}
