package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunExecutesEveryJob(t *testing.T) {
	ranges := PlanRanges(4, 0, 100, 1000, true)
	var completed int64

	jobs := JobsForRanges(ranges, func(ctx context.Context, workerID int, r Range) error {
		atomic.AddInt64(&completed, 1)
		return nil
	})

	err := Run(context.Background(), jobs, 4, nil)
	require.NoError(t, err)
	require.EqualValues(t, 4, completed)
}

func TestRunReturnsFirstErrorAndCancelsTheRest(t *testing.T) {
	ranges := PlanRanges(4, 0, 100, 1000, true)
	boom := errors.New("boom")

	jobs := JobsForRanges(ranges, func(ctx context.Context, workerID int, r Range) error {
		if workerID == 0 {
			return boom
		}
		<-ctx.Done()
		return ctx.Err()
	})

	err := Run(context.Background(), jobs, 4, nil)
	require.Error(t, err)
}

func TestRunRecoversFromPanic(t *testing.T) {
	ranges := PlanRanges(1, 0, 10, 100, true)
	jobs := JobsForRanges(ranges, func(ctx context.Context, workerID int, r Range) error {
		panic("generator exploded")
	})

	err := Run(context.Background(), jobs, 1, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "panicked")
}
