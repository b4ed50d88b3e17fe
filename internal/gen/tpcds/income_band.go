package tpcds

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

// IncomeBandGenerator produces the 20-row income_band table: fixed,
// evenly-stepped $10,000 bands from $0 to $200,000.
type IncomeBandGenerator struct {
	total int64
}

func NewIncomeBandGenerator(opts genopts.Options) (*IncomeBandGenerator, error) {
	return &IncomeBandGenerator{total: incomeBandRows(opts.ScaleFactor)}, nil
}

func (g *IncomeBandGenerator) Schema() batch.Schema     { return incomeBandSchema }
func (g *IncomeBandGenerator) TotalRows() (int64, bool) { return g.total, true }
func (g *IncomeBandGenerator) SkipTo(row int64) error    { return nil }

func (g *IncomeBandGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	const step = 10_000
	lower := int32((rowNumber - 1) * step)
	upper := lower + step - 1

	row := batch.NewRow(len(incomeBandSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, lower)
	row.Set(2, upper)
	return row, nil
}
