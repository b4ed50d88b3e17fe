package ssb

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	suppColAddr  = 1100
	suppColCity  = 1101
	suppColPhone = 1102
)

// SupplierGenerator produces SSB's denormalized supplier table, structured
// identically to CustomerGenerator's city/nation/region resolution.
type SupplierGenerator struct {
	streams *seedplan.StreamSet
	nations *distro.Distribution
	regions *distro.Distribution
	total   int64
}

func NewSupplierGenerator(opts genopts.Options) (*SupplierGenerator, error) {
	store, err := distro.Load("ssb", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	nations, err := store.Find("nations")
	if err != nil {
		return nil, err
	}
	regions, err := store.Find("regions")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "address", ColumnID: suppColAddr, SeedsPerRow: 40},
		{Name: "city", ColumnID: suppColCity, SeedsPerRow: 2},
		{Name: "phone", ColumnID: suppColPhone, SeedsPerRow: 3},
	})
	return &SupplierGenerator{
		streams: ss, nations: nations, regions: regions,
		total: supplierRows(opts.ScaleFactor),
	}, nil
}

func (g *SupplierGenerator) Schema() batch.Schema     { return supplierSchema }
func (g *SupplierGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *SupplierGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

func (g *SupplierGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	suppkey := rowNumber

	addrStream := g.streams.Stream("address")
	n := addrStream.NextUniform(10, 40)
	address := make([]byte, n)
	for i := range address {
		address[i] = byte('A' + addrStream.NextUniform(0, 25))
	}

	nationIdx := g.streams.Stream("city").NextUniform(0, int64(g.nations.Len()-1))
	nation := g.nations.Entries[nationIdx]
	regionIdx, _ := parseAuxInt(nation.AuxString)
	region := g.regions.Entries[regionIdx%int64(g.regions.Len())]
	cityDigit := g.streams.Stream("city").NextUniform(0, 9)
	city := fmt.Sprintf("%s%d", nation.Text[:min(len(nation.Text), 9)], cityDigit)

	phoneStream := g.streams.Stream("phone")
	phone := fmt.Sprintf("%d-%03d-%03d-%04d", 10+nationIdx, phoneStream.NextUniform(100, 999),
		phoneStream.NextUniform(100, 999), phoneStream.NextUniform(1000, 9999))

	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(supplierSchema.Fields))
	row.Set(0, suppkey)
	row.Set(1, fmt.Sprintf("Supplier#%09d", suppkey))
	row.Set(2, string(address))
	row.Set(3, city)
	row.Set(4, nation.Text)
	row.Set(5, region.Text)
	row.Set(6, phone)
	return row, nil
}
