package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elizabethaxley/astrobotany/internal/testing/leaktest"
)

type countingJob struct {
	mu   sync.Mutex
	runs int
	err  error
	done chan struct{}
}

func (j *countingJob) Process(context.Context) error {
	j.mu.Lock()
	j.runs++
	j.mu.Unlock()
	j.done <- struct{}{}
	return j.err
}

func TestPool_ProcessesQueuedJobs(t *testing.T) {
	leak := leaktest.New(t)
	defer leak.Check(2)

	pool := NewPool(2, 4)
	pool.Start()

	job := &countingJob{done: make(chan struct{}, 4)}
	pool.Enqueue(job)
	pool.Enqueue(job)
	<-job.done
	<-job.done

	pool.Stop()
	assert.Equal(t, 2, job.runs)
}

func TestPool_WorkerSurvivesJobError(t *testing.T) {
	pool := NewPool(1, 2)
	pool.Start()

	failing := &countingJob{err: errors.New("boom"), done: make(chan struct{}, 1)}
	pool.Enqueue(failing)
	<-failing.done

	// The same single worker must still pick up the next job.
	ok := &countingJob{done: make(chan struct{}, 1)}
	pool.Enqueue(ok)
	<-ok.done

	pool.Stop()
	assert.Equal(t, 1, ok.runs)
}
