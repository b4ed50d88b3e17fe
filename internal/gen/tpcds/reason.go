package tpcds

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const reasonColDesc = 7000

// ReasonGenerator produces the reason table, drawing each description
// from the return_reasons distribution.
type ReasonGenerator struct {
	streams *seedplan.StreamSet
	descs   *distro.Distribution
	total   int64
}

func NewReasonGenerator(opts genopts.Options) (*ReasonGenerator, error) {
	store, err := distro.Load("tpcds", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	descs, err := store.Find("return_reasons")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "desc", ColumnID: reasonColDesc, SeedsPerRow: 1},
	})
	return &ReasonGenerator{streams: ss, descs: descs, total: reasonRows(opts.ScaleFactor)}, nil
}

func (g *ReasonGenerator) Schema() batch.Schema     { return reasonSchema }
func (g *ReasonGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *ReasonGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

func (g *ReasonGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	desc := g.descs.Pick(g.streams.Stream("desc")).Text
	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(reasonSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, fmt.Sprintf("AAAAAAAA%08d", rowNumber))
	row.Set(2, desc)
	return row, nil
}
