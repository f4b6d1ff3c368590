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

// Executor accepts nullary thunks and decides where and when they run. It
// is the one pluggable concern a Future has: which goroutine runs its
// continuations.
//
// Submit must be safe to call from any goroutine, including from inside a
// thunk it previously submitted.
type Executor interface {
	Submit(thunk func())
}
