package tpcds

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func testOptions() genopts.Options {
	opts := genopts.Default()
	opts.ScaleFactor = 1
	return opts
}

func TestDateDimPreservesLastDomQuirk(t *testing.T) {
	g, err := NewDateDimGenerator(testOptions())
	require.NoError(t, err)
	row, err := g.GenerateRow(1)
	require.NoError(t, err)
	require.NotNil(t, row.Values)
	require.Equal(t, domain.NewDateID(1998, 1, 28), row.Values[20])
}

func TestIncomeBandTwentyFixedRows(t *testing.T) {
	g, err := NewIncomeBandGenerator(testOptions())
	require.NoError(t, err)
	total, ok := g.TotalRows()
	require.True(t, ok)
	require.EqualValues(t, 20, total)

	row, err := g.GenerateRow(1)
	require.NoError(t, err)
	require.EqualValues(t, int32(0), row.Values[1])
	require.EqualValues(t, int32(9999), row.Values[2])
}

func TestItemGeneratorSixVersionsPerBusinessKey(t *testing.T) {
	g, err := NewItemGenerator(testOptions())
	require.NoError(t, err)

	var firstKey string
	for i := int64(1); i <= 6; i++ {
		row, err := g.GenerateRow(i)
		require.NoError(t, err)
		key := row.Values[1].(string)
		if i == 1 {
			firstKey = key
		} else {
			require.Equal(t, firstKey, key, "rows within a group share one business key")
		}
	}
	seventhRow, err := g.GenerateRow(7)
	require.NoError(t, err)
	require.NotEqual(t, firstKey, seventhRow.Values[1].(string))
}

func TestStoreSalesAndReturnsShareTicketNumbers(t *testing.T) {
	opts := testOptions()
	sales, err := NewStoreSalesGenerator(opts)
	require.NoError(t, err)
	returns, err := NewStoreReturnsGenerator(opts)
	require.NoError(t, err)

	sold := make(map[[2]int64]bool)
	for i := int64(1); i <= 500; i++ {
		saleRow, err := sales.GenerateRow(i)
		require.NoError(t, err)
		sold[[2]int64{saleRow.Values[4].(int64), saleRow.Values[1].(int64)}] = true
	}
	row, err := returns.GenerateRow(1)
	require.NoError(t, err)
	if row.Values != nil {
		ticket := row.Values[4].(int64)
		require.GreaterOrEqual(t, ticket, int64(1))
		require.True(t, sold[[2]int64{ticket, row.Values[1].(int64)}], "return row's ticket/item pair was never sold")
	}
}
