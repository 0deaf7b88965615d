// Package worker provides a fixed-size pool for CPU-bound jobs. The arena
// harness runs self-play matches on it; the agent's decision path never
// touches it.
package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// Submit queues f on the pool. To be used by a function that may be CPU
// intensive.
func Submit(f func()) {
	workerQueue <- f
}

// SubmitWait queues every job and blocks until all of them have finished.
func SubmitWait(jobs []func()) {
	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for _, f := range jobs {
		f := f
		Submit(func() {
			defer wg.Done()
			f()
		})
	}
	wg.Wait()
}
