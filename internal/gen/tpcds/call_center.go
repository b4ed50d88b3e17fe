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
	ccColFlags = 8300
	ccColName  = 8301
	ccColClass = 8302
	ccColEmp   = 8303
	ccColAddr  = 8304
	ccColTax   = 8305
)

var callCenterSCDOffsets = domain.SCDDateOffsets{
	MinDateID:   domain.NewDateID(1998, 1, 1),
	ThirdDateID: domain.NewDateID(1999, 8, 1),
	HalfDateID:  domain.NewDateID(2000, 12, 1),
}

var callCenterClasses = []string{"large", "medium", "small"}

// CallCenterGenerator produces the call_center type-2 slowly-changing
// dimension, structured identically to StoreGenerator but with its own
// small SCDGroupSize-scaled row count.
type CallCenterGenerator struct {
	streams *seedplan.StreamSet
	store   *distro.Store
	total   int64

	groupFlags *domain.ChangeFlags
	prevName   string
	prevClass  string
}

func NewCallCenterGenerator(opts genopts.Options) (*CallCenterGenerator, error) {
	store, err := distro.Load("tpcds", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "flags", ColumnID: ccColFlags, SeedsPerRow: 1},
		{Name: "name", ColumnID: ccColName, SeedsPerRow: 1},
		{Name: "class", ColumnID: ccColClass, SeedsPerRow: 1},
		{Name: "employees", ColumnID: ccColEmp, SeedsPerRow: 1},
		{Name: "address", ColumnID: ccColAddr, SeedsPerRow: 9},
		{Name: "tax", ColumnID: ccColTax, SeedsPerRow: 1},
	})
	return &CallCenterGenerator{streams: ss, store: store, total: callCenterRows(opts.ScaleFactor) * domain.SCDGroupSize}, nil
}

func (g *CallCenterGenerator) Schema() batch.Schema     { return callCenterSchema }
func (g *CallCenterGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *CallCenterGenerator) SkipTo(row int64) error {
	groupStart := domain.GroupStartRow(row + 1)
	groups := (groupStart - 1) / domain.SCDGroupSize
	g.streams.SkipRows(groups)
	g.groupFlags = nil
	return nil
}

func (g *CallCenterGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	pos := (rowNumber - 1) % domain.SCDGroupSize
	firstRecord := pos == 0
	if firstRecord {
		g.groupFlags = domain.NewChangeFlags(g.streams.Stream("flags"))
	}

	uniqueID := uint64((rowNumber-1)/domain.SCDGroupSize + 1)
	businessKey, recStart, recEnd, _ := domain.SetSCDKeys(uniqueID, rowNumber, callCenterSCDOffsets, 0)

	addr, err := domain.BuildAddress(g.store, g.streams.Stream("address"), 0)
	if err != nil {
		return batch.Row{}, err
	}

	name := fmt.Sprintf("Call Center %d", g.streams.Stream("name").NextUniform(1, 99))
	g.groupFlags.ChangeSCDValue(&name, &g.prevName, firstRecord)

	class := callCenterClasses[g.streams.Stream("class").NextUniform(0, int64(len(callCenterClasses)-1))]
	g.groupFlags.ChangeSCDValue(&class, &g.prevClass, firstRecord)

	employees := int32(g.streams.Stream("employees").NextUniform(2, 300))
	taxPct := domain.NewDecimal(g.streams.Stream("tax").NextUniform(0, 12), 2, 4)

	if pos == domain.SCDGroupSize-1 {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
	}

	row := batch.NewRow(len(callCenterSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, businessKey)
	row.Set(2, recStart)
	row.Set(3, recEnd)
	row.Set(4, name)
	row.Set(5, class)
	row.Set(6, employees)
	row.Set(7, addr.City)
	row.Set(8, addr.State)
	row.Set(9, addr.Zip)
	row.Set(10, taxPct)
	return row, nil
}
