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

import "sync"

// ManualExecutor queues submitted thunks instead of running them; Run must
// be called, explicitly, to drain the queue on whatever goroutine calls it.
//
// This is how a chain hops onto a specific goroutine: bind a
// ManualExecutor to a Future with Via, have that goroutine's loop call Run
// periodically, and every continuation attached after the Via call runs
// there, in submission order, whenever Run is next called.
type ManualExecutor struct {
	mu    sync.Mutex
	queue []func()
}

// NewManualExecutor returns an empty ManualExecutor.
func NewManualExecutor() *ManualExecutor {
	return &ManualExecutor{}
}

// Submit appends thunk to the queue. Safe to call from any goroutine,
// including from inside a thunk that Run is currently executing; such a
// thunk lands in the next batch, not the one being drained.
func (e *ManualExecutor) Submit(thunk func()) {
	e.mu.Lock()
	e.queue = append(e.queue, thunk)
	e.mu.Unlock()
}

// Run swaps the current queue out, then invokes every thunk in it, in
// order, on the calling goroutine. It returns the number of thunks run.
//
// Swapping the slice out before iterating, rather than draining it in
// place, is what guarantees thunks submitted during Run land in the next
// batch instead of being run (or missed) by this call.
func (e *ManualExecutor) Run() int {
	e.mu.Lock()
	todo := e.queue
	e.queue = nil
	e.mu.Unlock()

	for _, thunk := range todo {
		thunk()
	}
	return len(todo)
}
