package qtable

import (
	"context"
	"iter"
	"time"

	"github.com/theapemachine/errnie"
	"golang.org/x/sync/errgroup"
)

/*
Pool simulates enumerated input states on a fixed number of workers. The
states are handed out one at a time in enumeration order. The first failing
simulation cancels the run: no further states are handed out, simulations
already in flight finish but their results are dropped, and Run returns the
first error.
*/
type Pool struct {
	workers int
	timeout time.Duration
	oracle  Oracle
	metrics *Metrics
}

// NewPool creates a pool. A workers value below 1 means one worker, which
// simulates the states strictly one after the other.
func NewPool(oracle Oracle, workers int, timeout time.Duration, metrics *Metrics) *Pool {
	if workers < 1 {
		workers = 1
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Pool{
		workers: workers,
		timeout: timeout,
		oracle:  oracle,
		metrics: metrics,
	}
}

// Run simulates every state of states and stores row i for the i-th state.
// rows must have room for all states.
func (p *Pool) Run(ctx context.Context, c Computation, states iter.Seq[State], rows []Row) error {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan Job)

	g.Go(func() error {
		defer close(jobs)

		var id int
		for state := range states {
			if id >= len(rows) {
				break
			}
			select {
			case jobs <- Job{ID: id, Input: state, StartTime: time.Now()}:
			case <-gctx.Done():
				return gctx.Err()
			}
			id++
		}
		return nil
	})

	workers := p.workers
	if workers > len(rows) {
		workers = len(rows)
	}
	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		w := &Worker{
			id:   i,
			pool: p,
		}
		g.Go(func() error {
			return w.run(gctx, c, jobs, rows)
		})
	}
	errnie.Info("pool: simulating %d states on %d workers", len(rows), workers)

	return g.Wait()
}
