package tpch

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	partColName      = 2000
	partColMfgr      = 2001
	partColBrand     = 2002
	partColType      = 2003
	partColSize      = 2004
	partColContainer = 2005
	partColComment   = 2006
)

// PartGenerator produces the `part` table.
type PartGenerator struct {
	opts    genopts.Options
	streams *seedplan.StreamSet
	store   *distro.Store
	colors  *distro.Distribution
	types   *distro.Distribution
	cont    *distro.Distribution
	total   int64
}

func NewPartGenerator(opts genopts.Options) (*PartGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	colors, err := store.Find("colors")
	if err != nil {
		return nil, err
	}
	types, err := store.Find("part_types")
	if err != nil {
		return nil, err
	}
	cont, err := store.Find("containers")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "name", ColumnID: partColName, SeedsPerRow: 5},
		{Name: "mfgr", ColumnID: partColMfgr, SeedsPerRow: 1},
		{Name: "brand", ColumnID: partColBrand, SeedsPerRow: 1},
		{Name: "type", ColumnID: partColType, SeedsPerRow: 1},
		{Name: "size", ColumnID: partColSize, SeedsPerRow: 1},
		{Name: "container", ColumnID: partColContainer, SeedsPerRow: 1},
		{Name: "comment", ColumnID: partColComment, SeedsPerRow: 1},
	})
	return &PartGenerator{
		opts: opts, streams: ss, store: store,
		colors: colors, types: types, cont: cont,
		total: partRows(opts.ScaleFactor),
	}, nil
}

func (g *PartGenerator) Schema() batch.Schema     { return partSchema }
func (g *PartGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *PartGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

func (g *PartGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	partkey := rowNumber

	nameStream := g.streams.Stream("name")
	var words []string
	for i := 0; i < 5; i++ {
		words = append(words, g.colors.Pick(nameStream).Text)
	}
	name := fmt.Sprintf("%s %s %s %s %s", words[0], words[1], words[2], words[3], words[4])

	mfgr := 1 + g.streams.Stream("mfgr").NextUniform(0, 4)
	brand := mfgr*10 + 1 + g.streams.Stream("brand").NextUniform(0, 4)
	ptype := g.types.Pick(g.streams.Stream("type")).Text
	size := g.streams.Stream("size").NextUniform(1, 50)
	container := g.cont.Pick(g.streams.Stream("container")).Text

	retailPrice := domain.NewDecimal(90000+(partkey/10)%20001+100*(partkey%1000), 2, 11)

	comment, err := domain.GenerateText(g.store, g.streams.Stream("comment"), 5, 22)
	if err != nil {
		return batch.Row{}, err
	}
	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(partSchema.Fields))
	row.Set(0, partkey)
	row.Set(1, name)
	row.Set(2, fmt.Sprintf("Manufacturer#%d", mfgr))
	row.Set(3, fmt.Sprintf("Brand#%d", brand))
	row.Set(4, ptype)
	row.Set(5, int32(size))
	row.Set(6, container)
	row.Set(7, retailPrice)
	row.Set(8, comment)
	return row, nil
}
