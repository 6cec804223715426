// Package worker provides a small fixed-size pool for background jobs.
package worker

import (
	"context"
	"sync"

	"github.com/elizabethaxley/astrobotany/internal/logger"
)

// Job is a unit of background work.
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines. A failing job is
// logged and dropped; it never takes a worker down with it.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a pool with the given worker count and queue depth.
func NewPool(workers, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			ctx := context.Background()
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue submits a job. Blocks while the queue is full.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop signals the workers and waits for in-flight jobs to finish.
// Jobs still queued are discarded.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}
