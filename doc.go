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

// Package promise provides a minimal promise/future primitive: a producer
// publishes a value or an error exactly once, and consumers attach
// transformations and typed-error recovery handlers that run inline, on a
// worker pool, or on a manually drained queue.
//
// A cell (the shared state behind one Future) has exactly one of three
// states at any time:
//
// Pending: the producer hasn't resolved the cell yet.
// Value: the producer published a value.
// Error: the producer published an error, or a callback returned one.
//
// Each call to Then or Error (or their *Future variants) allocates a new
// cell and returns a Future over it; the cell's own callback slot is
// single-shot, so a chain is a straight line, not a tree: attaching a
// second continuation to the same pending Future replaces the first one,
// whose downstream Future then never resolves.
//
// # Executors
//
// A Future carries an optional Executor. When the cell it wraps resolves,
// its attached continuation runs on that Executor if one is bound, or
// inline on the resolving goroutine otherwise. The executor is inherited by
// every downstream cell created from a Future, so a long chain started with
// Via runs entirely on one Executor without repeating the call at every
// step. Calling Via again only affects continuations attached after that
// call, not ones already attached upstream.
//
// # Errors
//
// Then never sees an error: if the upstream cell is an error, it forwards
// that error downstream unchanged. Error (and ErrorAs) never sees a value,
// for the same reason in reverse. ErrorAs additionally only runs its
// callback when the captured error matches the requested type, via
// errors.As; otherwise it forwards the original error downstream, which is
// what makes a chain of ErrorAs calls behave like an ordered list of typed
// exception handlers, the first match wins.
//
// Get on an unresolved Future blocks until the cell resolves, then consumes
// the handle; calling Get twice on the same Future is a programming error,
// and panics.
package promise
