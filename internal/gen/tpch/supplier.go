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
	supplierColAddr    = 3000
	supplierColNation  = 3001
	supplierColPhone   = 3002
	supplierColAcctbal = 3003
	supplierColComment = 3004

	supplierComplaintPct = 5 // percent of suppliers whose comment mentions "Complaints"
	supplierRecommendPct = 5 // percent whose comment mentions "Recommends"
)

// SupplierGenerator produces the `supplier` table.
type SupplierGenerator struct {
	opts    genopts.Options
	streams *seedplan.StreamSet
	store   *distro.Store
	nations *distro.Distribution
	total   int64
}

func NewSupplierGenerator(opts genopts.Options) (*SupplierGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	nations, err := store.Find("nations")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "address", ColumnID: supplierColAddr, SeedsPerRow: 40},
		{Name: "nation", ColumnID: supplierColNation, SeedsPerRow: 1},
		{Name: "phone", ColumnID: supplierColPhone, SeedsPerRow: 3},
		{Name: "acctbal", ColumnID: supplierColAcctbal, SeedsPerRow: 1},
		{Name: "comment", ColumnID: supplierColComment, SeedsPerRow: 25},
	})
	return &SupplierGenerator{
		opts: opts, streams: ss, store: store, nations: nations,
		total: supplierRows(opts.ScaleFactor),
	}, nil
}

func (g *SupplierGenerator) Schema() batch.Schema     { return supplierSchema }
func (g *SupplierGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *SupplierGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

// commentWithInjection builds a grammar comment and, with the reference
// kit's documented probability, overwrites its midpoint with a fixed
// "Customer Complaints"/"Recommends" phrase.
func commentWithInjection(store *distro.Store, s *seedplan.StreamSet, streamName string, minLen, maxLen int, complaintPct, recommendPct int64) (string, error) {
	stream := s.Stream(streamName)
	text, err := domain.GenerateText(store, stream, minLen, maxLen)
	if err != nil {
		return "", err
	}
	roll := stream.NextUniform(0, 99)
	mid := len(text) / 2
	switch {
	case roll < complaintPct && mid+18 <= len(text):
		return text[:mid] + "Customer Complaints" + text[mid+18:], nil
	case roll < complaintPct+recommendPct && mid+10 <= len(text):
		return text[:mid] + "Recommends" + text[mid+10:], nil
	default:
		return text, nil
	}
}

func (g *SupplierGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	suppkey := rowNumber

	address := randomVString(g.streams.Stream("address"), 10, 40)
	nationIdx := g.streams.Stream("nation").NextUniform(0, int64(g.nations.Len()-1))
	nationKey := nationIdx + 1
	phone := phoneNumber(nationIdx, g.streams.Stream("phone"))
	acctbalCents := g.streams.Stream("acctbal").NextUniform(-99999, 999999)
	acctbal := domain.NewDecimal(acctbalCents, 2, 12)

	comment, err := commentWithInjection(g.store, g.streams, "comment", 25, 100, supplierComplaintPct, supplierRecommendPct)
	if err != nil {
		return batch.Row{}, err
	}
	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(supplierSchema.Fields))
	row.Set(0, suppkey)
	row.Set(1, fmt.Sprintf("Supplier#%09d", suppkey))
	row.Set(2, address)
	row.Set(3, nationKey)
	row.Set(4, phone)
	row.Set(5, acctbal)
	row.Set(6, comment)
	return row, nil
}
