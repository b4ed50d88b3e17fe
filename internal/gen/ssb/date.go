package ssb

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

var monthNames = []string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

// DateGenerator produces SSB's date dimension: a fixed calendar spanning
// the same 7-year generation window as the fact tables' order dates. It
// carries no random draws at all, matching the reference kit's fully
// deterministic date_dim/date population.
type DateGenerator struct {
	total int64
}

func NewDateGenerator(opts genopts.Options) (*DateGenerator, error) {
	return &DateGenerator{total: dateRows(opts.ScaleFactor)}, nil
}

func (g *DateGenerator) Schema() batch.Schema     { return dateSchema }
func (g *DateGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *DateGenerator) SkipTo(row int64) error { return nil }

func (g *DateGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	d := domain.DateID(int64(domain.NewDateID(1992, 1, 1)) + rowNumber - 1)
	t := d.ToTime()

	year := t.Year()
	month := int(t.Month())
	day := t.Day()
	dow := t.Weekday()

	yearStart := domain.NewDateID(year, 1, 1)
	dayOfYear := int(d-yearStart) + 1
	var nextMonthStart domain.DateID
	if month == 12 {
		nextMonthStart = domain.NewDateID(year+1, 1, 1)
	} else {
		nextMonthStart = domain.FirstDayOfMonth(year, month+1)
	}

	row := batch.NewRow(len(dateSchema.Fields))
	row.Set(0, d)
	row.Set(1, fmt.Sprintf("%s %d, %d", monthNames[month-1], day, year))
	row.Set(2, dow.String())
	row.Set(3, monthNames[month-1])
	row.Set(4, int32(year))
	row.Set(5, int32(year*100+month))
	row.Set(6, fmt.Sprintf("%s%d", monthNames[month-1][:3], year))
	row.Set(7, int32(int(dow)+1))
	row.Set(8, int32(day))
	row.Set(9, int32(dayOfYear))
	row.Set(10, dow == 6)
	row.Set(11, d+1 == nextMonthStart)
	row.Set(12, false)
	row.Set(13, dow != 0 && dow != 6)
	return row, nil
}
