package ssb

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	custColAddr = 1000
	custColCity = 1001
	custColPhone = 1002
	custColMktseg = 1003
)

// CustomerGenerator produces SSB's denormalized customer table: unlike
// TPC-H's customer it carries city/nation/region text directly instead of
// a nation-key foreign key. The nation and region distributions are
// looked up once up front; each row draws its own nation from the city
// stream and carries that nation's name and region text.
type CustomerGenerator struct {
	streams *seedplan.StreamSet
	nations *distro.Distribution
	regions *distro.Distribution
	total   int64
}

func NewCustomerGenerator(opts genopts.Options) (*CustomerGenerator, error) {
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
		{Name: "address", ColumnID: custColAddr, SeedsPerRow: 40},
		{Name: "city", ColumnID: custColCity, SeedsPerRow: 2},
		{Name: "phone", ColumnID: custColPhone, SeedsPerRow: 3},
		{Name: "mktsegment", ColumnID: custColMktseg, SeedsPerRow: 1},
	})
	return &CustomerGenerator{
		streams: ss, nations: nations, regions: regions,
		total: customerRows(opts.ScaleFactor),
	}, nil
}

func (g *CustomerGenerator) Schema() batch.Schema     { return customerSchema }
func (g *CustomerGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *CustomerGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

var segments = []string{"AUTOMOBILE", "BUILDING", "FURNITURE", "HOUSEHOLD", "MACHINERY"}

func (g *CustomerGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	custkey := rowNumber

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

	segIdx := g.streams.Stream("mktsegment").NextUniform(0, int64(len(segments)-1))

	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(customerSchema.Fields))
	row.Set(0, custkey)
	row.Set(1, fmt.Sprintf("Customer#%09d", custkey))
	row.Set(2, string(address))
	row.Set(3, city)
	row.Set(4, nation.Text)
	row.Set(5, region.Text)
	row.Set(6, phone)
	row.Set(7, segments[segIdx])
	return row, nil
}

func parseAuxInt(s string) (int64, error) {
	var n int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return n, nil
		}
		n = n*10 + int64(c-'0')
	}
	return n, nil
}
