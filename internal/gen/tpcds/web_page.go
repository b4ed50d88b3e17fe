package tpcds

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	wpColFlags  = 8500
	wpColDates  = 8501
	wpColAuto   = 8502
	wpColURL    = 8503
	wpColType   = 8504
	wpColChars  = 8505
)

var webPageSCDOffsets = domain.SCDDateOffsets{
	MinDateID:   domain.NewDateID(1998, 1, 1),
	ThirdDateID: domain.NewDateID(1999, 8, 1),
	HalfDateID:  domain.NewDateID(2000, 12, 1),
}

var webPageTypes = []string{"feedback", "review", "order", "catalog", "welcome", "order confirmation"}

// WebPageGenerator produces the web_page type-2 slowly-changing
// dimension, structured like ItemGenerator/StoreGenerator but with a
// surrogate creation/access date pair instead of an address.
type WebPageGenerator struct {
	streams *seedplan.StreamSet
	total   int64

	groupFlags  *domain.ChangeFlags
	prevURL     string
	prevType    string
}

func NewWebPageGenerator(opts genopts.Options) (*WebPageGenerator, error) {
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "flags", ColumnID: wpColFlags, SeedsPerRow: 1},
		{Name: "dates", ColumnID: wpColDates, SeedsPerRow: 2},
		{Name: "auto", ColumnID: wpColAuto, SeedsPerRow: 1},
		{Name: "url", ColumnID: wpColURL, SeedsPerRow: 1},
		{Name: "type", ColumnID: wpColType, SeedsPerRow: 1},
		{Name: "chars", ColumnID: wpColChars, SeedsPerRow: 1},
	})
	return &WebPageGenerator{streams: ss, total: webPageRows(opts.ScaleFactor) * domain.SCDGroupSize}, nil
}

func (g *WebPageGenerator) Schema() batch.Schema     { return webPageSchema }
func (g *WebPageGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *WebPageGenerator) SkipTo(row int64) error {
	groupStart := domain.GroupStartRow(row + 1)
	groups := (groupStart - 1) / domain.SCDGroupSize
	g.streams.SkipRows(groups)
	g.groupFlags = nil
	return nil
}

func (g *WebPageGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	pos := (rowNumber - 1) % domain.SCDGroupSize
	firstRecord := pos == 0
	if firstRecord {
		g.groupFlags = domain.NewChangeFlags(g.streams.Stream("flags"))
	}

	uniqueID := uint64((rowNumber-1)/domain.SCDGroupSize + 1)
	businessKey, recStart, recEnd, _ := domain.SetSCDKeys(uniqueID, rowNumber, webPageSCDOffsets, 0)

	dateStream := g.streams.Stream("dates")
	creationOffset := dateStream.NextUniform(0, dateDimDays-1)
	accessOffset := dateStream.NextUniform(0, dateDimDays-1)
	creationDateSk := int64(domain.NewDateID(1998, 1, 1)) + creationOffset
	accessDateSk := int64(domain.NewDateID(1998, 1, 1)) + accessOffset

	autogen := g.streams.Stream("auto").NextUniform(0, 1) == 1

	url := fmt.Sprintf("http://www.foo.com/page%d.html", g.streams.Stream("url").NextUniform(1, 999999))
	g.groupFlags.ChangeSCDValue(&url, &g.prevURL, firstRecord)

	pageType := webPageTypes[g.streams.Stream("type").NextUniform(0, int64(len(webPageTypes)-1))]
	g.groupFlags.ChangeSCDValue(&pageType, &g.prevType, firstRecord)

	charCount := int32(g.streams.Stream("chars").NextUniform(200, 8000))

	if pos == domain.SCDGroupSize-1 {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
	}

	row := batch.NewRow(len(webPageSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, businessKey)
	row.Set(2, recStart)
	row.Set(3, recEnd)
	row.Set(4, creationDateSk)
	row.Set(5, accessDateSk)
	row.Set(6, autogen)
	row.Set(7, url)
	row.Set(8, pageType)
	row.Set(9, charCount)
	return row, nil
}
