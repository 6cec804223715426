// Package scheduler runs jobs at fixed intervals on a worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/elizabethaxley/astrobotany/internal/worker"
)

// Scheduler ticks registered jobs onto a worker pool. It owns the
// tickers only; the pool owns execution.
type Scheduler struct {
	pool *worker.Pool
	quit chan struct{}
	wg   sync.WaitGroup
}

// New creates a scheduler backed by the given pool.
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues the job on the pool every interval, starting one
// interval from now.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.pool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all tickers. Jobs already enqueued still run.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
