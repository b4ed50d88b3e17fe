package textformat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
)

func TestWriteBatchEncodesPipeDelimitedRows(t *testing.T) {
	b := &batch.Batch{
		Rows: 2,
		Cols: []batch.Column{
			{
				Field:  batch.Field{Name: "id", Type: batch.Int64},
				Values: []interface{}{int64(1), int64(2)},
				Valid:  []bool{true, true},
			},
			{
				Field:  batch.Field{Name: "name", Type: batch.Utf8},
				Values: []interface{}{"ALICE", nil},
				Valid:  []bool{true, false},
			},
			{
				Field:  batch.Field{Name: "active", Type: batch.Bool},
				Values: []interface{}{true, false},
				Valid:  []bool{true, true},
			},
			{
				Field:  batch.Field{Name: "price", Type: batch.Decimal, Precision: 10, Scale: 2},
				Values: []interface{}{domain.NewDecimal(12345, 2, 10), domain.NewDecimal(100, 2, 10)},
				Valid:  []bool{true, true},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, b))

	lines := []string{
		"1|ALICE|Y|123.45|\n",
		"2||N|1.00|\n",
	}
	require.Equal(t, lines[0]+lines[1], buf.String())
}

func TestFormatFloatDropsDecimalPointForIntegerValues(t *testing.T) {
	require.Equal(t, "5", formatFloat(5.0))
	require.Equal(t, "5.5", formatFloat(5.5))
}

func TestFormatValueRendersDateAsISO(t *testing.T) {
	d := domain.NewDateID(1998, 3, 14)
	require.Equal(t, "1998-03-14", formatValue(d))
}
