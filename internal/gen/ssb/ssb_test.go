package ssb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func testOptions() genopts.Options {
	opts := genopts.Default()
	opts.ScaleFactor = 1
	return opts
}

func TestCustomerGeneratorRowCount(t *testing.T) {
	g, err := NewCustomerGenerator(testOptions())
	require.NoError(t, err)
	total, ok := g.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, 30_000, total)

	row, err := g.GenerateRow(1)
	require.NoError(t, err)
	require.Equal(t, "Customer#000000001", row.Values[1])
}

func TestDateGeneratorCoversSevenYears(t *testing.T) {
	g, err := NewDateGenerator(testOptions())
	require.NoError(t, err)
	total, ok := g.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, 2_556, total)

	first, err := g.GenerateRow(1)
	require.NoError(t, err)
	require.EqualValues(t, int32(1992), first.Values[4])
}

func TestLineorderTotalRowsUnknown(t *testing.T) {
	g, err := NewLineorderGenerator(testOptions())
	require.NoError(t, err)
	_, ok := g.TotalRows()
	require.False(t, ok)

	row, err := g.GenerateRow(1)
	require.NoError(t, err)
	require.EqualValues(t, int64(1), row.Values[0])
}

func TestPartGeneratorScalesWithLog2(t *testing.T) {
	opts := testOptions()
	opts.ScaleFactor = 4
	g, err := NewPartGenerator(opts)
	require.NoError(t, err)
	total, ok := g.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, 200_000*3, total)
}
