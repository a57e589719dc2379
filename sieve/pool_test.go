package sieve

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsAllJobsExactlyOnce(t *testing.T) {
	p := newWorkerPool(3)
	defer p.close()

	const n = 10
	var counter int64
	jobs := make([]job, n)
	for i := 0; i < n; i++ {
		jobs[i] = func() { atomic.AddInt64(&counter, 1) }
	}
	p.runBatches(jobs)
	assert.EqualValues(t, n, counter)
}

func TestWorkerPoolLastJobRunsInlineWhenSingleWorker(t *testing.T) {
	p := newWorkerPool(1)
	defer p.close()

	done := make(chan struct{}, 1)
	p.runBatches([]job{func() { done <- struct{}{} }})
	select {
	case <-done:
	default:
		t.Fatal("job did not run")
	}
}

func TestWorkerPoolHandlesFewerJobsThanWorkers(t *testing.T) {
	p := newWorkerPool(4)
	defer p.close()

	var counter int64
	p.runBatches([]job{
		func() { atomic.AddInt64(&counter, 1) },
		func() { atomic.AddInt64(&counter, 1) },
	})
	assert.EqualValues(t, 2, counter)
}
