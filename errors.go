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

import "fmt"

// panic messages for contract violations: double-resolution, double-Get,
// and nil callbacks. These are programming errors, not part of the
// error-propagation taxonomy below.
const (
	nilCallbackPanicMsg  = "promise: the provided callback is nil"
	alreadyResolvedMsg   = "promise: the promise is already resolved"
	alreadyConsumedMsg   = "promise: the future's result was already consumed by Get"
)

// errorCapture is the opaque, re-throwable error token that a cell carries
// in its error state. It wraps whatever error value a producer or a
// callback published, and supports type-directed matching through
// errors.As/errors.Is, via Unwrap.
type errorCapture struct {
	err error
}

func newErrorCapture(err error) *errorCapture {
	if err == nil {
		return nil
	}
	if ec, ok := err.(*errorCapture); ok {
		return ec
	}
	return &errorCapture{err: err}
}

func (e *errorCapture) Error() string {
	return e.err.Error()
}

// Unwrap exposes the captured error, so errors.As/errors.Is, and the
// type-directed matching used by ErrorAs, see through the capture to the
// original error value.
func (e *errorCapture) Unwrap() error {
	return e.err
}

// recoveredPanic wraps a value recovered from a panic inside a callback.
// It is captured as an ordinary error so that it propagates through Error
// and ErrorAs exactly like any other error, per spec: a callback that
// panics is indistinguishable, downstream, from one that returned an error.
type recoveredPanic struct {
	v any
}

func (e *recoveredPanic) Error() string {
	return fmt.Sprintf("promise: callback panicked: %v", e.v)
}
