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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThreadPoolExecutorRunsAllSubmittedThunks(t *testing.T) {
	pool := NewThreadPoolExecutor(4)
	defer pool.Close()

	var n int64
	const total = 200
	for i := 0; i < total; i++ {
		pool.Submit(func() { atomic.AddInt64(&n, 1) })
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&n) == total
	}, time.Second, time.Millisecond)
}

func TestThreadPoolExecutorCloseWaitsForQueuedWork(t *testing.T) {
	pool := NewThreadPoolExecutor(1)

	var ran atomic.Bool
	done := make(chan struct{})
	pool.Submit(func() {
		<-done
		ran.Store(true)
	})

	closed := make(chan struct{})
	go func() {
		pool.Close()
		close(closed)
	}()

	// Close must block until the in-flight thunk finishes.
	select {
	case <-closed:
		t.Fatalf("Close returned before the running thunk finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(done)
	<-closed
	require.True(t, ran.Load())
}

func TestThreadPoolExecutorDefaultsZeroToOneWorker(t *testing.T) {
	pool := NewThreadPoolExecutor(0)
	defer pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("a pool constructed with n<=0 never ran a submitted thunk")
	}
}

func TestManualExecutorRunsInSubmissionOrder(t *testing.T) {
	e := NewManualExecutor()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		e.Submit(func() { order = append(order, i) })
	}

	n := e.Run()
	require.Equal(t, 5, n)
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestManualExecutorRunReturnsZeroWhenEmpty(t *testing.T) {
	e := NewManualExecutor()
	require.Equal(t, 0, e.Run())
}

func TestManualExecutorSubmitDuringRunLandsInNextBatch(t *testing.T) {
	e := NewManualExecutor()

	var secondRan bool
	e.Submit(func() {
		e.Submit(func() { secondRan = true })
	})

	n := e.Run()
	require.Equal(t, 1, n)
	require.False(t, secondRan, "thunk submitted during Run ran in the same batch")

	n = e.Run()
	require.Equal(t, 1, n)
	require.True(t, secondRan)
}
