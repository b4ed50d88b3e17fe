package tpch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func testOptions(t *testing.T) genopts.Options {
	t.Helper()
	opts := genopts.Default()
	opts.ScaleFactor = 1
	return opts
}

func TestNationGeneratorDeterministic(t *testing.T) {
	opts := testOptions(t)
	g1, err := NewNationGenerator(opts)
	require.NoError(t, err)
	g2, err := NewNationGenerator(opts)
	require.NoError(t, err)

	total, ok := g1.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, 25, total)

	for i := int64(1); i <= total; i++ {
		r1, err := g1.GenerateRow(i)
		require.NoError(t, err)
		r2, err := g2.GenerateRow(i)
		require.NoError(t, err)
		require.Equal(t, r1.Values, r2.Values)
	}
}

func TestRegionGeneratorFiveRows(t *testing.T) {
	opts := testOptions(t)
	g, err := NewRegionGenerator(opts)
	require.NoError(t, err)
	total, ok := g.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, 5, total)

	row, err := g.GenerateRow(1)
	require.NoError(t, err)
	require.EqualValues(t, int64(1), row.Values[0])
}

func TestPartGeneratorSkipMatchesSequential(t *testing.T) {
	opts := testOptions(t)

	sequential, err := NewPartGenerator(opts)
	require.NoError(t, err)
	var skipped int64 = 1000
	for i := int64(1); i <= skipped; i++ {
		_, err := sequential.GenerateRow(i)
		require.NoError(t, err)
	}
	sequentialRow, err := sequential.GenerateRow(skipped + 1)
	require.NoError(t, err)

	jumped, err := NewPartGenerator(opts)
	require.NoError(t, err)
	require.NoError(t, jumped.SkipTo(skipped))
	jumpedRow, err := jumped.GenerateRow(skipped + 1)
	require.NoError(t, err)

	require.Equal(t, sequentialRow.Values, jumpedRow.Values)
}

func TestSupplierGeneratorRowCount(t *testing.T) {
	opts := testOptions(t)
	g, err := NewSupplierGenerator(opts)
	require.NoError(t, err)
	total, ok := g.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, 10_000, total)

	row, err := g.GenerateRow(1)
	require.NoError(t, err)
	require.Equal(t, "Supplier#000000001", row.Values[1])
}

func TestPartsuppSuppliersPerPart(t *testing.T) {
	opts := testOptions(t)
	g, err := NewPartsuppGenerator(opts)
	require.NoError(t, err)
	total, ok := g.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, partRows(opts.ScaleFactor)*suppliersPerPart, total)

	seen := make(map[int64]bool)
	for i := int64(1); i <= suppliersPerPart; i++ {
		row, err := g.GenerateRow(i)
		require.NoError(t, err)
		require.EqualValues(t, int64(1), row.Values[0])
		suppKey := row.Values[1].(int64)
		require.False(t, seen[suppKey], "duplicate supplier slot for part 1")
		seen[suppKey] = true
	}
}

func TestOrdersSparseOrderkeyIsSparse(t *testing.T) {
	seen := make(map[int64]bool)
	for dense := int64(1); dense <= 16; dense++ {
		k := sparseOrderkey(dense)
		require.False(t, seen[k], "orderkey %d collided", k)
		seen[k] = true
		require.GreaterOrEqual(t, k, int64(1))
	}
}

func TestOrdersCustkeyNeverMultipleOfThree(t *testing.T) {
	opts := testOptions(t)
	g, err := NewOrdersGenerator(opts)
	require.NoError(t, err)
	for i := int64(1); i <= 200; i++ {
		row, err := g.GenerateRow(i)
		require.NoError(t, err)
		custkey := row.Values[1].(int64)
		require.NotZero(t, custkey % 3)
	}
}

func TestLineitemProducesAtLeastOneLinePerOrder(t *testing.T) {
	opts := testOptions(t)
	g, err := NewLineitemGenerator(opts)
	require.NoError(t, err)

	firstOrderkey := int64(-1)
	lineCountForFirst := 0
	for i := int64(1); i <= 50; i++ {
		row, err := g.GenerateRow(i)
		require.NoError(t, err)
		ok := row.Values[0].(int64)
		if firstOrderkey == -1 {
			firstOrderkey = ok
		}
		if ok == firstOrderkey {
			lineCountForFirst++
		} else {
			break
		}
	}
	require.GreaterOrEqual(t, lineCountForFirst, 1)
	require.LessOrEqual(t, lineCountForFirst, 7)
}

func TestLineitemTotalRowsUnknown(t *testing.T) {
	opts := testOptions(t)
	g, err := NewLineitemGenerator(opts)
	require.NoError(t, err)
	_, ok := g.TotalRows()
	require.False(t, ok)
}
