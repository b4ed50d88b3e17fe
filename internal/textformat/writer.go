// Package textformat implements the external text encoding that is part
// of the benchmark contract: pipe-delimited records, one per line,
// matching the dbgen/dsdgen/ssb-dbgen flat-file output the reference
// toolkits produce.
package textformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
)

// WriteBatch encodes every row of b to w: pipe-delimited fields, a
// trailing "|" before the newline, NULLs as empty fields. It buffers
// internally, so callers don't need to wrap w themselves.
func WriteBatch(w io.Writer, b *batch.Batch) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	for row := 0; row < b.Rows; row++ {
		for _, col := range b.Cols {
			if !col.Valid[row] {
				if _, err := bw.WriteString("|"); err != nil {
					return err
				}
				continue
			}
			if _, err := bw.WriteString(formatValue(col.Values[row])); err != nil {
				return err
			}
			if _, err := bw.WriteString("|"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// formatValue renders one cell following the external format's per-type
// rules.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "Y"
		}
		return "N"
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float32:
		return formatFloat(float64(val))
	case float64:
		return formatFloat(val)
	case domain.Decimal:
		return val.String()
	case domain.DateID:
		t := val.ToTime()
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatFloat renders a compact shortest form, dropping the decimal
// point for integer-valued floats.
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
