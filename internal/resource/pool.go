// Package resource provides the concurrency-control primitives the build
// phase uses to fan work out across workers, and the pacing primitive
// Index.Query uses to hold queries to a target rate when a query rate
// limit is configured.
package resource

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many tasks run at once. It is the one piece of
// concurrency discipline construction relies on: building bucket graphs
// is embarrassingly parallel across buckets (and across levels), but the
// number of workers must be capped at the caller's chosen worker count
// rather than left to grow with the bucket count.
type Pool struct {
	sem        *semaphore.Weighted
	maxWorkers int64
}

// NewPool creates a Pool that runs at most maxWorkers tasks concurrently.
// maxWorkers <= 0 is treated as 1.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(maxWorkers)), maxWorkers: int64(maxWorkers)}
}

// MaxWorkers returns the pool's worker cap.
func (p *Pool) MaxWorkers() int {
	return int(p.maxWorkers)
}

// Run executes every task with at most MaxWorkers running concurrently,
// and returns the first error encountered (after which the shared context
// passed to still-running tasks is canceled). Tasks already queued for a
// semaphore acquire when the context is canceled fail fast with the
// context's error instead of blocking forever.
func (p *Pool) Run(ctx context.Context, tasks []func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		if err := p.sem.Acquire(gctx, 1); err != nil {
			if werr := g.Wait(); werr != nil {
				return werr
			}
			return err
		}
		g.Go(func() error {
			defer p.sem.Release(1)
			return task(gctx)
		})
	}
	return g.Wait()
}
