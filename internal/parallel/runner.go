package parallel

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/stormdb-contrib/tpcgen/internal/logging"
)

// Job is one worker's unit of work: drive a range to completion and
// return its error, if any. A parallel generation range has no priority
// ordering between workers, so a job queue here is a plain list, not a
// priority queue.
type Job interface {
	ID() string
	Execute(ctx context.Context) error
}

// RangeJob adapts a plain generation function over a single Range into a
// Job, the shape Run expects.
type RangeJob struct {
	WorkerID int
	Range    Range
	Run      func(ctx context.Context, workerID int, r Range) error
}

func (j *RangeJob) ID() string { return fmt.Sprintf("worker-%d", j.WorkerID) }

func (j *RangeJob) Execute(ctx context.Context) error {
	return j.Run(ctx, j.WorkerID, j.Range)
}

// JobsForRanges builds one RangeJob per planned range, ready for Run.
func JobsForRanges(ranges []Range, run func(ctx context.Context, workerID int, r Range) error) []Job {
	jobs := make([]Job, len(ranges))
	for i, r := range ranges {
		jobs[i] = &RangeJob{WorkerID: i, Range: r, Run: run}
	}
	return jobs
}

// Run executes jobs concurrently on a bounded conc context-pool: each
// worker constructs and drains its own independent row generator with no
// inter-worker communication. WithCancelOnError cancels every other
// job's context the moment one job returns an error, the shared
// cooperative-cancellation point every worker checks between batches,
// and WithFirstError reports only that first error: first error wins,
// other workers finish what they started. A job that panics has the
// panic caught and re-raised from Wait instead of crashing the process.
func Run(parent context.Context, jobs []Job, workers int, logger logging.Logger) (err error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if workers <= 0 {
		workers = 1
	}

	p := pool.New().
		WithMaxGoroutines(workers).
		WithContext(parent).
		WithCancelOnError().
		WithFirstError()

	for _, job := range jobs {
		job := job
		p.Go(func(ctx context.Context) error {
			jobLogger := logger.With(zap.String("job_id", job.ID()))
			if ctx.Err() != nil {
				jobLogger.Debug("worker skipped, group already failed")
				return ctx.Err()
			}

			if err := job.Execute(ctx); err != nil {
				jobLogger.Warn("worker failed", zap.Error(err))
				return err
			}
			jobLogger.Debug("worker completed")
			return nil
		})
	}

	// conc re-panics out of Wait when any job panicked; recover it here
	// so a panicking generator reports as an ordinary error like any
	// other job failure instead of taking down the process.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
			logger.Error("worker panicked", err)
		}
	}()
	return p.Wait()
}
