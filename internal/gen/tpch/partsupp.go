package tpch

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	partsuppColAvailqty = 4000
	partsuppColSupplycost = 4001
	partsuppColComment   = 4002
)

// PartsuppGenerator produces the `partsupp` table: suppliersPerPart rows
// per part, with the supplier slot chosen by dbgen's rotating offset so
// each part's suppliers are spread across the supplier keyspace instead
// of clustering.
type PartsuppGenerator struct {
	opts        genopts.Options
	streams     *seedplan.StreamSet
	store       *distro.Store
	total       int64
	supplierCnt int64
}

func NewPartsuppGenerator(opts genopts.Options) (*PartsuppGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "availqty", ColumnID: partsuppColAvailqty, SeedsPerRow: suppliersPerPart},
		{Name: "supplycost", ColumnID: partsuppColSupplycost, SeedsPerRow: suppliersPerPart},
		{Name: "comment", ColumnID: partsuppColComment, SeedsPerRow: suppliersPerPart * 20},
	})
	return &PartsuppGenerator{
		opts: opts, streams: ss, store: store,
		total:       partRows(opts.ScaleFactor) * suppliersPerPart,
		supplierCnt: supplierRows(opts.ScaleFactor),
	}, nil
}

func (g *PartsuppGenerator) Schema() batch.Schema     { return partsuppSchema }
func (g *PartsuppGenerator) TotalRows() (int64, bool) { return g.total, true }

// SkipTo advances by whole parts (suppliersPerPart rows each) since all
// suppliersPerPart rows for a part are drawn from the same seed position.
func (g *PartsuppGenerator) SkipTo(row int64) error {
	parts := row / suppliersPerPart
	g.streams.SkipRows(parts)
	return nil
}

func (g *PartsuppGenerator) supplierKey(partKey int64, slot int64) int64 {
	offset := partKey + slot*(g.supplierCnt/suppliersPerPart+(partKey-1)/g.supplierCnt)
	return (offset % g.supplierCnt) + 1
}

func (g *PartsuppGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	partKey := (rowNumber-1)/suppliersPerPart + 1
	slot := (rowNumber - 1) % suppliersPerPart

	availqty := g.streams.Stream("availqty").NextUniform(1, 9999)
	supplyCostCents := g.streams.Stream("supplycost").NextUniform(100, 100000)
	supplyCost := domain.NewDecimal(supplyCostCents, 2, 12)
	comment, err := domain.GenerateText(g.store, g.streams.Stream("comment"), 49, 198)
	if err != nil {
		return batch.Row{}, err
	}

	if slot == suppliersPerPart-1 {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
	}

	row := batch.NewRow(len(partsuppSchema.Fields))
	row.Set(0, partKey)
	row.Set(1, g.supplierKey(partKey, slot))
	row.Set(2, int32(availqty))
	row.Set(3, supplyCost)
	row.Set(4, comment)
	return row, nil
}
