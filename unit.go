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

// Unit is the void carrier: the placeholder value type used for chains
// whose step produces no value. Future[Unit] shares the exact same
// three-state cell as every other Future[T]; there's no separate
// void-flavored implementation.
type Unit = struct{}

// unit is the one value of Unit, spelled out for readability at call
// sites that need to pass it explicitly.
var unit Unit

// Via creates a ready Unit cell bound to e, attaches f directly (bypassing
// Then, which is same-type and can't carry Unit's value type across to T),
// and returns the downstream Future. It's the idiomatic way to start a
// chain pinned to a specific executor from the very first step.
func Via[T any](e Executor, f func() T) Future[T] {
	start := newResolvedCell[Unit](unit)
	start.executor = e

	d := newCell[T]()
	d.executor = e

	start.attach(func() {
		runCaptured(d, func() (T, error) { return f(), nil })
	})

	return Future[T]{c: d}
}
