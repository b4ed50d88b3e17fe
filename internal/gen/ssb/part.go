package ssb

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	partColName      = 1200
	partColCategory  = 1201
	partColBrand     = 1202
	partColColor     = 1203
	partColType      = 1204
	partColSize      = 1205
	partColContainer = 1206
)

var manufacturers = []string{"MFGR#1", "MFGR#2", "MFGR#3", "MFGR#4", "MFGR#5"}

// PartGenerator produces SSB's part table. Category and brand are derived
// from the same manufacturer/category/brand nesting dbgen uses for
// TPC-H's p_type, but SSB splits them into their own columns instead of
// concatenating a type string.
type PartGenerator struct {
	colors *distro.Distribution
	types  *distro.Distribution
	cont   *distro.Distribution
	streams *seedplan.StreamSet
	total  int64
}

func NewPartGenerator(opts genopts.Options) (*PartGenerator, error) {
	store, err := distro.Load("ssb", opts.DistributionDir)
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
		{Name: "name", ColumnID: partColName, SeedsPerRow: 2},
		{Name: "category", ColumnID: partColCategory, SeedsPerRow: 1},
		{Name: "brand", ColumnID: partColBrand, SeedsPerRow: 1},
		{Name: "color", ColumnID: partColColor, SeedsPerRow: 1},
		{Name: "type", ColumnID: partColType, SeedsPerRow: 1},
		{Name: "size", ColumnID: partColSize, SeedsPerRow: 1},
		{Name: "container", ColumnID: partColContainer, SeedsPerRow: 1},
	})
	return &PartGenerator{
		colors: colors, types: types, cont: cont, streams: ss,
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
	name := fmt.Sprintf("%s %s", g.colors.Pick(nameStream).Text, g.colors.Pick(nameStream).Text)

	category := 1 + g.streams.Stream("category").NextUniform(0, 4)
	mfgrIdx := (category - 1) / 5
	if mfgrIdx > 4 {
		mfgrIdx = 4
	}
	mfgr := manufacturers[mfgrIdx]
	brandSuffix := g.streams.Stream("brand").NextUniform(1, 40)
	brand := fmt.Sprintf("%s%d", mfgr, brandSuffix)
	color := g.colors.Pick(g.streams.Stream("color")).Text
	ptype := g.types.Pick(g.streams.Stream("type")).Text
	size := g.streams.Stream("size").NextUniform(1, 50)
	container := g.cont.Pick(g.streams.Stream("container")).Text

	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(partSchema.Fields))
	row.Set(0, partkey)
	row.Set(1, name)
	row.Set(2, mfgr)
	row.Set(3, fmt.Sprintf("MFGR#%d", category))
	row.Set(4, brand)
	row.Set(5, color)
	row.Set(6, ptype)
	row.Set(7, int32(size))
	row.Set(8, container)
	return row, nil
}
