package tpch

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/errs"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const regionColComment = 1001

// RegionGenerator produces the fixed 5-row region table.
type RegionGenerator struct {
	streams *seedplan.StreamSet
	store   *distro.Store
	names   *distro.Distribution
}

func NewRegionGenerator(opts genopts.Options) (*RegionGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	names, err := store.Find("regions")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "comment", ColumnID: regionColComment, SeedsPerRow: 1},
	})
	return &RegionGenerator{streams: ss, store: store, names: names}, nil
}

func (g *RegionGenerator) Schema() batch.Schema     { return regionSchema }
func (g *RegionGenerator) TotalRows() (int64, bool) { return regionRows(0), true }

func (g *RegionGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

func (g *RegionGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	total, _ := g.TotalRows()
	if rowNumber > total {
		return batch.Row{}, nil
	}
	idx := rowNumber - 1
	if idx < 0 || int(idx) >= g.names.Len() {
		return batch.Row{}, errs.Internalf("region row %d out of range", rowNumber)
	}
	entry := g.names.Entries[idx]

	commentStream := g.streams.Stream("comment")
	comment, err := domain.GenerateText(g.store, commentStream, 31, 115)
	if err != nil {
		return batch.Row{}, err
	}
	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(regionSchema.Fields))
	row.Set(0, idx+1)
	row.Set(1, entry.Text)
	row.Set(2, comment)
	return row, nil
}
