package qtable

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

// Worker processes simulation jobs for a pool.
type Worker struct {
	id   int
	pool *Pool
}

/*
run pulls jobs until the channel is closed or the context is cancelled. A
job is never started once the context is done. Each result goes to the row
slot of its job, so workers never share a slot.
*/
func (w *Worker) run(ctx context.Context, c Computation, jobs <-chan Job, rows []Row) error {
	for job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		output, err := w.processJob(ctx, c, job)
		if err != nil {
			return err
		}

		rows[job.ID] = Row{
			Input:  job.Input,
			Output: output,
		}
	}
	return nil
}

func (w *Worker) processJob(ctx context.Context, c Computation, job Job) (State, error) {
	var (
		output State
		err    error
	)

	if w.pool.timeout <= 0 {
		output, err = w.pool.oracle.Simulate(ctx, c, job.Input.Clone())
	} else {
		output, err = w.simulateWithTimeout(ctx, c, job)
	}

	if err != nil {
		var timeout *TimeoutError
		switch {
		case errors.As(err, &timeout):
			w.pool.metrics.recordSimulation(job.StartTime, statusTimeout)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			w.pool.metrics.recordSimulation(job.StartTime, statusError)
		}
		return nil, &SimulationError{
			Index: job.ID,
			Input: job.Input.Clone(),
			Err:   err,
		}
	}

	if len(output) != c.NumQubits() {
		w.pool.metrics.recordSimulation(job.StartTime, statusError)
		return nil, &SimulationError{
			Index: job.ID,
			Input: job.Input.Clone(),
			Err: fmt.Errorf("%w: got %d, expected %d",
				ErrOutputWidth, len(output), c.NumQubits()),
		}
	}

	w.pool.metrics.recordSimulation(job.StartTime, statusSuccess)
	return output, nil
}

/*
simulateWithTimeout runs the oracle in its own goroutine. The oracle has no
cancellation hook of its own, so a call that outlives its budget or the build
keeps running and its result is dropped.
*/
func (w *Worker) simulateWithTimeout(ctx context.Context, c Computation, job Job) (State, error) {
	type outcome struct {
		output State
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		output, err := w.pool.oracle.Simulate(ctx, c, job.Input.Clone())
		done <- outcome{output, err}
	}()

	timer := time.NewTimer(w.pool.timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		return res.output, res.err
	case <-timer.C:
		errnie.Info("worker %d: input state %s timed out after %v", w.id, job.Input, w.pool.timeout)
		return nil, &TimeoutError{
			Input: job.Input.Clone(),
			After: w.pool.timeout,
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
