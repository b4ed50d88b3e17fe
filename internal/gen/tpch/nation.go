package tpch

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/errs"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	nationColComment = 1000
)

// NationGenerator produces the fixed 25-row nation table. It carries no
// scale-dependent behavior: only its comment text is randomly generated.
type NationGenerator struct {
	streams *seedplan.StreamSet
	store   *distro.Store
	names   *distro.Distribution
}

// NewNationGenerator builds the generator; opts.ScaleFactor is accepted
// for interface uniformity but unused since nation never scales.
func NewNationGenerator(opts genopts.Options) (*NationGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	names, err := store.Find("nations")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "comment", ColumnID: nationColComment, SeedsPerRow: 1},
	})
	return &NationGenerator{streams: ss, store: store, names: names}, nil
}

func (g *NationGenerator) Schema() batch.Schema { return nationSchema }

func (g *NationGenerator) TotalRows() (int64, bool) { return nationRows(0), true }

func (g *NationGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

func (g *NationGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	total, _ := g.TotalRows()
	if rowNumber > total {
		return batch.Row{}, nil
	}
	idx := rowNumber - 1
	if idx < 0 || int(idx) >= g.names.Len() {
		return batch.Row{}, errs.Internalf("nation row %d out of range", rowNumber)
	}
	entry := g.names.Entries[idx]

	commentStream := g.streams.Stream("comment")
	comment, err := domain.GenerateText(g.store, commentStream, 31, 114)
	if err != nil {
		return batch.Row{}, err
	}
	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(nationSchema.Fields))
	row.Set(0, idx+1)
	row.Set(1, entry.Text)
	regionIdx, _ := parseInt(entry.AuxString)
	row.Set(2, int64(regionIdx)+1)
	row.Set(3, comment)
	return row, nil
}
