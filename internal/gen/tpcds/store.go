package tpcds

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	storeColFlags = 8100
	storeColName  = 8101
	storeColAddr  = 8102
	storeColTax   = 8103
)

var storeSCDOffsets = domain.SCDDateOffsets{
	MinDateID:   domain.NewDateID(1998, 1, 1),
	ThirdDateID: domain.NewDateID(1999, 8, 1),
	HalfDateID:  domain.NewDateID(2000, 12, 1),
}

// StoreGenerator produces the store type-2 slowly-changing dimension,
// structured identically to ItemGenerator but over a much smaller row
// count.
type StoreGenerator struct {
	streams *seedplan.StreamSet
	store   *distro.Store
	total   int64

	groupFlags *domain.ChangeFlags
	prevName   string
	prevCity   string
}

func NewStoreGenerator(opts genopts.Options) (*StoreGenerator, error) {
	store, err := distro.Load("tpcds", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "flags", ColumnID: storeColFlags, SeedsPerRow: 1},
		{Name: "name", ColumnID: storeColName, SeedsPerRow: 1},
		{Name: "address", ColumnID: storeColAddr, SeedsPerRow: 9},
		{Name: "tax", ColumnID: storeColTax, SeedsPerRow: 1},
	})
	return &StoreGenerator{streams: ss, store: store, total: storeRows(opts.ScaleFactor) * domain.SCDGroupSize}, nil
}

func (g *StoreGenerator) Schema() batch.Schema     { return storeSchema }
func (g *StoreGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *StoreGenerator) SkipTo(row int64) error {
	groupStart := domain.GroupStartRow(row + 1)
	groups := (groupStart - 1) / domain.SCDGroupSize
	g.streams.SkipRows(groups)
	g.groupFlags = nil
	return nil
}

func (g *StoreGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	pos := (rowNumber - 1) % domain.SCDGroupSize
	firstRecord := pos == 0
	if firstRecord {
		g.groupFlags = domain.NewChangeFlags(g.streams.Stream("flags"))
	}

	uniqueID := uint64((rowNumber-1)/domain.SCDGroupSize + 1)
	businessKey, recStart, recEnd, _ := domain.SetSCDKeys(uniqueID, rowNumber, storeSCDOffsets, 0)

	addr, err := domain.BuildAddress(g.store, g.streams.Stream("address"), 0)
	if err != nil {
		return batch.Row{}, err
	}

	name := fmt.Sprintf("Store %d", g.streams.Stream("name").NextUniform(1, 999))
	g.groupFlags.ChangeSCDValue(&name, &g.prevName, firstRecord)

	city := addr.City
	g.groupFlags.ChangeSCDValue(&city, &g.prevCity, firstRecord)

	taxPct := domain.NewDecimal(g.streams.Stream("tax").NextUniform(0, 12), 2, 4)
	marketID := int32(g.streams.Stream("tax").NextUniform(1, 10))

	if pos == domain.SCDGroupSize-1 {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
	}

	row := batch.NewRow(len(storeSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, businessKey)
	row.Set(2, recStart)
	row.Set(3, recEnd)
	row.Set(4, name)
	row.Set(5, marketID)
	row.Set(6, city)
	row.Set(7, addr.State)
	row.Set(8, addr.Zip)
	row.Set(9, taxPct)
	return row, nil
}
