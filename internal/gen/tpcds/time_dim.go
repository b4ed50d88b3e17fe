package tpcds

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

// TimeDimGenerator produces one row per second of a day:
// fully deterministic, no random draws.
type TimeDimGenerator struct {
	total int64
}

func NewTimeDimGenerator(opts genopts.Options) (*TimeDimGenerator, error) {
	return &TimeDimGenerator{total: timeDimRows(opts.ScaleFactor)}, nil
}

func (g *TimeDimGenerator) Schema() batch.Schema     { return timeDimSchema }
func (g *TimeDimGenerator) TotalRows() (int64, bool) { return g.total, true }
func (g *TimeDimGenerator) SkipTo(row int64) error    { return nil }

func (g *TimeDimGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	secondOfDay := int32(rowNumber - 1)
	hour := secondOfDay / 3600
	minute := (secondOfDay % 3600) / 60
	second := secondOfDay % 60

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	shift, subShift, meal := shiftFor(hour)

	row := batch.NewRow(len(timeDimSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, fmt.Sprintf("AAAAAAAA%08d", rowNumber))
	row.Set(2, secondOfDay)
	row.Set(3, hour)
	row.Set(4, minute)
	row.Set(5, second)
	row.Set(6, ampm)
	row.Set(7, shift)
	row.Set(8, subShift)
	row.Set(9, meal)
	return row, nil
}

func shiftFor(hour int32) (shift, subShift, meal string) {
	switch {
	case hour < 8:
		return "third", "morning", "breakfast"
	case hour < 16:
		return "first", "afternoon", "lunch"
	default:
		return "second", "evening", "dinner"
	}
}
