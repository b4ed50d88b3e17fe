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
	webColFlags = 8400
	webColName  = 8401
	webColClass = 8402
	webColAddr  = 8403
	webColTax   = 8404
)

var webSiteSCDOffsets = domain.SCDDateOffsets{
	MinDateID:   domain.NewDateID(1998, 1, 1),
	ThirdDateID: domain.NewDateID(1999, 8, 1),
	HalfDateID:  domain.NewDateID(2000, 12, 1),
}

var webSiteClasses = []string{"small", "medium", "large"}

// WebSiteGenerator produces the web_site type-2 slowly-changing
// dimension, structured identically to StoreGenerator/CallCenterGenerator
// but representing the (typically one or two) storefronts a sales-channel
// scale factor supports.
type WebSiteGenerator struct {
	streams *seedplan.StreamSet
	store   *distro.Store
	total   int64

	groupFlags *domain.ChangeFlags
	prevName   string
	prevClass  string
}

func NewWebSiteGenerator(opts genopts.Options) (*WebSiteGenerator, error) {
	store, err := distro.Load("tpcds", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "flags", ColumnID: webColFlags, SeedsPerRow: 1},
		{Name: "name", ColumnID: webColName, SeedsPerRow: 1},
		{Name: "class", ColumnID: webColClass, SeedsPerRow: 1},
		{Name: "address", ColumnID: webColAddr, SeedsPerRow: 9},
		{Name: "tax", ColumnID: webColTax, SeedsPerRow: 1},
	})
	return &WebSiteGenerator{streams: ss, store: store, total: webSiteRows(opts.ScaleFactor) * domain.SCDGroupSize}, nil
}

func (g *WebSiteGenerator) Schema() batch.Schema     { return webSiteSchema }
func (g *WebSiteGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *WebSiteGenerator) SkipTo(row int64) error {
	groupStart := domain.GroupStartRow(row + 1)
	groups := (groupStart - 1) / domain.SCDGroupSize
	g.streams.SkipRows(groups)
	g.groupFlags = nil
	return nil
}

func (g *WebSiteGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	pos := (rowNumber - 1) % domain.SCDGroupSize
	firstRecord := pos == 0
	if firstRecord {
		g.groupFlags = domain.NewChangeFlags(g.streams.Stream("flags"))
	}

	uniqueID := uint64((rowNumber-1)/domain.SCDGroupSize + 1)
	businessKey, recStart, recEnd, _ := domain.SetSCDKeys(uniqueID, rowNumber, webSiteSCDOffsets, 0)

	addr, err := domain.BuildAddress(g.store, g.streams.Stream("address"), 0)
	if err != nil {
		return batch.Row{}, err
	}

	name := fmt.Sprintf("Web Site %d", g.streams.Stream("name").NextUniform(1, 9))
	g.groupFlags.ChangeSCDValue(&name, &g.prevName, firstRecord)

	class := webSiteClasses[g.streams.Stream("class").NextUniform(0, int64(len(webSiteClasses)-1))]
	g.groupFlags.ChangeSCDValue(&class, &g.prevClass, firstRecord)

	taxPct := domain.NewDecimal(g.streams.Stream("tax").NextUniform(0, 12), 2, 4)

	if pos == domain.SCDGroupSize-1 {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
	}

	row := batch.NewRow(len(webSiteSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, businessKey)
	row.Set(2, recStart)
	row.Set(3, recEnd)
	row.Set(4, name)
	row.Set(5, class)
	row.Set(6, addr.City)
	row.Set(7, addr.State)
	row.Set(8, addr.Zip)
	row.Set(9, taxPct)
	return row, nil
}
