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
	customerColAddr     = 5000
	customerColNation   = 5001
	customerColPhone    = 5002
	customerColAcctbal  = 5003
	customerColMktseg   = 5004
	customerColComment  = 5005
)

var marketSegments = []string{"AUTOMOBILE", "BUILDING", "FURNITURE", "HOUSEHOLD", "MACHINERY"}

// CustomerGenerator produces the `customer` table.
type CustomerGenerator struct {
	opts    genopts.Options
	streams *seedplan.StreamSet
	store   *distro.Store
	nations *distro.Distribution
	total   int64
}

func NewCustomerGenerator(opts genopts.Options) (*CustomerGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	nations, err := store.Find("nations")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "address", ColumnID: customerColAddr, SeedsPerRow: 40},
		{Name: "nation", ColumnID: customerColNation, SeedsPerRow: 1},
		{Name: "phone", ColumnID: customerColPhone, SeedsPerRow: 3},
		{Name: "acctbal", ColumnID: customerColAcctbal, SeedsPerRow: 1},
		{Name: "mktsegment", ColumnID: customerColMktseg, SeedsPerRow: 1},
		{Name: "comment", ColumnID: customerColComment, SeedsPerRow: 25},
	})
	return &CustomerGenerator{
		opts: opts, streams: ss, store: store, nations: nations,
		total: customerRows(opts.ScaleFactor),
	}, nil
}

func (g *CustomerGenerator) Schema() batch.Schema     { return customerSchema }
func (g *CustomerGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *CustomerGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

func (g *CustomerGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	custkey := rowNumber

	address := randomVString(g.streams.Stream("address"), 10, 40)
	nationIdx := g.streams.Stream("nation").NextUniform(0, int64(g.nations.Len()-1))
	nationKey := nationIdx + 1
	phone := phoneNumber(nationIdx, g.streams.Stream("phone"))
	acctbalCents := g.streams.Stream("acctbal").NextUniform(-99999, 999999)
	acctbal := domain.NewDecimal(acctbalCents, 2, 12)
	segIdx := g.streams.Stream("mktsegment").NextUniform(0, int64(len(marketSegments)-1))

	comment, err := domain.GenerateText(g.store, g.streams.Stream("comment"), 29, 116)
	if err != nil {
		return batch.Row{}, err
	}
	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(customerSchema.Fields))
	row.Set(0, custkey)
	row.Set(1, fmt.Sprintf("Customer#%09d", custkey))
	row.Set(2, address)
	row.Set(3, nationKey)
	row.Set(4, phone)
	row.Set(5, acctbal)
	row.Set(6, marketSegments[segIdx])
	row.Set(7, comment)
	return row, nil
}
