package parallel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanRangesSingleWhenWorkersOne(t *testing.T) {
	ranges := PlanRanges(1, 0, 100, 1000, true)
	require.Len(t, ranges, 1)
	require.Equal(t, Range{StartRow: 0, RowCount: 100}, ranges[0])
}

func TestPlanRangesSingleWhenTotalUnknown(t *testing.T) {
	ranges := PlanRanges(4, 0, 100, 0, false)
	require.Len(t, ranges, 1)
	require.Equal(t, Range{StartRow: 0, RowCount: 100}, ranges[0])
}

func TestPlanRangesEvenSplit(t *testing.T) {
	ranges := PlanRanges(4, 0, 100, 1000, true)
	require.Len(t, ranges, 4)
	var total int64
	for _, r := range ranges {
		require.EqualValues(t, 25, r.RowCount)
		total += r.RowCount
	}
	require.EqualValues(t, 100, total)

	require.EqualValues(t, 0, ranges[0].StartRow)
	require.EqualValues(t, 25, ranges[1].StartRow)
	require.EqualValues(t, 50, ranges[2].StartRow)
	require.EqualValues(t, 75, ranges[3].StartRow)
}

func TestPlanRangesUnevenSplitDistributesRemainder(t *testing.T) {
	ranges := PlanRanges(3, 0, 10, 1000, true)
	require.Len(t, ranges, 3)

	require.EqualValues(t, 4, ranges[0].RowCount)
	require.EqualValues(t, 3, ranges[1].RowCount)
	require.EqualValues(t, 3, ranges[2].RowCount)

	require.EqualValues(t, 0, ranges[0].StartRow)
	require.EqualValues(t, 4, ranges[1].StartRow)
	require.EqualValues(t, 7, ranges[2].StartRow)
}

func TestPlanRangesClipsToTotalRowsWhenRowCountUnbounded(t *testing.T) {
	ranges := PlanRanges(2, 900, -1, 1000, true)
	require.Len(t, ranges, 2)
	require.EqualValues(t, 50, ranges[0].RowCount)
	require.EqualValues(t, 50, ranges[1].RowCount)
	require.EqualValues(t, 900, ranges[0].StartRow)
	require.EqualValues(t, 950, ranges[1].StartRow)
}

func TestPlanRangesFewerWorkersThanRows(t *testing.T) {
	ranges := PlanRanges(8, 0, 3, 1000, true)
	require.Len(t, ranges, 3)
	for _, r := range ranges {
		require.EqualValues(t, 1, r.RowCount)
	}
}

func TestPlanRangesZeroSpanReturnsOneEmptyRange(t *testing.T) {
	ranges := PlanRanges(4, 1000, 100, 1000, true)
	require.Len(t, ranges, 1)
	require.EqualValues(t, 0, ranges[0].RowCount)
}
