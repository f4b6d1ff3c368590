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

import "errors"

// ErrorAs attaches a typed-error-recovery handler: cb only runs if this
// Future's error matches type E, checked with errors.As, which already
// gives pointer-typed E's the by-value matching and everything else the
// by-reference matching that spec.md calls for.
//
// Go methods can't carry their own type parameters, so this is a free
// function rather than a method; chaining several calls, each with a
// different E, behaves like an ordered list of typed exception handlers:
// the first ErrorAs whose E matches the dynamic error type recovers it,
// and later calls in the chain see either that handler's result or the
// original error, never both.
//
// If this Future resolves to a value, or to an error that doesn't match
// E, the result is forwarded unchanged, exactly like Error.
func ErrorAs[E error, T any](f Future[T], cb func(E) T) Future[T] {
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

		var target E
		if !errors.As(error(err), &target) {
			// no match: forward the original error unchanged, so the
			// next ErrorAs (or Error) in the chain gets a chance at it.
			d.setErr(err)
			return
		}
		runCaptured(d, func() (T, error) { return cb(target), nil })
	})
	return Future[T]{c: d}
}

// ErrorAsFuture is ErrorAs for a handler that itself returns a Future.
func ErrorAsFuture[E error, T any](f Future[T], cb func(E) Future[T]) Future[T] {
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

		var target E
		if !errors.As(error(err), &target) {
			d.setErr(err)
			return
		}
		forward(d, func() (Future[T], error) { return cb(target), nil })
	})
	return Future[T]{c: d}
}
