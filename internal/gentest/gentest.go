// Package gentest collects generator property-test helpers: determinism,
// skip-equals-regenerate, partition concatenation, full seed consumption
// and column projection, expressed once against the RowGenerator
// interface. gentest_test.go exercises them against a fake generator;
// the generator packages' own tests do not call them.
package gentest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/parallel"
)

// Drain pulls rows starting at the 1-based row number start, stopping
// after limit rows (limit < 0 means "until the generator signals
// exhaustion"), mirroring the Assembler's own GenerateRow loop.
func Drain(t *testing.T, gen batch.RowGenerator, start, limit int64) []batch.Row {
	t.Helper()
	require.NoError(t, gen.SkipTo(start-1))

	var rows []batch.Row
	for row := start; limit < 0 || int64(len(rows)) < limit; row++ {
		r, err := gen.GenerateRow(row)
		require.NoError(t, err)
		if r.Values == nil {
			break
		}
		rows = append(rows, r)
	}
	return rows
}

// AssertDeterministic verifies that two independently constructed
// generators over the same row range produce identical rows.
func AssertDeterministic(t *testing.T, newGen func() batch.RowGenerator, start, count int64) {
	t.Helper()
	a := Drain(t, newGen(), start, count)
	b := Drain(t, newGen(), start, count)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].Values, b[i].Values, "row %d diverged between runs", start+int64(i))
	}
}

// AssertSkipEqualsRegenerate verifies that rows
// [r, r+k) produced by skipping straight to r equal the tail of a serial
// scan of [0, r+k) from a freshly constructed generator.
func AssertSkipEqualsRegenerate(t *testing.T, newGen func() batch.RowGenerator, r, k int64) {
	t.Helper()
	skipped := Drain(t, newGen(), r+1, k)

	serial := Drain(t, newGen(), 1, r+k)
	require.GreaterOrEqual(t, int64(len(serial)), r, "serial scan came up short of row %d", r)
	tail := serial[r:]

	require.Equal(t, len(tail), len(skipped))
	for i := range tail {
		require.Equal(t, tail[i].Values, skipped[i].Values, "row %d diverged", r+int64(i))
	}
}

// AssertPartitionConcatenation verifies that splitting
// [0, T) into the given ranges and concatenating each range's
// independently constructed generator output equals one generator's full
// [0, T) scan, T being the sum of the ranges' row counts.
func AssertPartitionConcatenation(t *testing.T, newGen func() batch.RowGenerator, ranges []parallel.Range) {
	t.Helper()

	var total int64
	var concatenated []batch.Row
	for _, r := range ranges {
		total += r.RowCount
		concatenated = append(concatenated, Drain(t, newGen(), r.StartRow+1, r.RowCount)...)
	}

	whole := Drain(t, newGen(), 1, total)
	require.Equal(t, len(whole), len(concatenated))
	for i := range whole {
		require.Equal(t, whole[i].Values, concatenated[i].Values, "row %d diverged across partition boundary", i+1)
	}
}

// AssertSeedsFullyConsumed verifies that, for a single
// stream by name, after GenerateRow the stream reports no undrawn seeds
// remaining (ConsumeRemainingForRow padded it to its declared ceiling, or
// it was drawn exactly).
func AssertSeedsFullyConsumed(t *testing.T, remaining func() int64) {
	t.Helper()
	require.Zero(t, remaining(), "stream has undrawn seeds after GenerateRow")
}

// AssertColumnProjection verifies that a projected
// generation's column values equal the corresponding columns of an
// unprojected generation at the same rows.
func AssertColumnProjection(t *testing.T, full, projected batch.Schema, fullRow, projectedRow batch.Row) {
	t.Helper()
	idx, err := full.Project(projected.Names())
	require.NoError(t, err)
	require.Equal(t, len(idx), len(projectedRow.Values))
	for pi, fi := range idx {
		require.Equal(t, fullRow.Values[fi], projectedRow.Values[pi])
	}
}
