package tpcds

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	wsColDate  = 9400
	wsColItem  = 9401
	wsColCust  = 9402
	wsColSite  = 9403
	wsColPage  = 9404
	wsColShip  = 9405
	wsColLines = 9406
	wsColPrice = 9407
)

// WebSalesGenerator produces web_sales: the third sales-channel fact
// table, with the same per-order random line count CatalogSalesGenerator
// uses, but routed through a web site/page pair instead of a call
// center.
type WebSalesGenerator struct {
	streams   *seedplan.StreamSet
	itemCount int64
	custCount int64
	siteCount int64
	pageCount int64
	shipCount int64
	orderCnt  int64

	cursorOrder int64
	cursorLine  int64
	orderDate   domain.DateID
	custkey     int64
	sitekey     int64
	pagekey     int64
	shipkey     int64
	lineCount   int64
	haveCursor  bool
}

func NewWebSalesGenerator(opts genopts.Options) (*WebSalesGenerator, error) {
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "date", ColumnID: wsColDate, SeedsPerRow: 1},
		{Name: "item", ColumnID: wsColItem, SeedsPerRow: 1},
		{Name: "cust", ColumnID: wsColCust, SeedsPerRow: 1},
		{Name: "site", ColumnID: wsColSite, SeedsPerRow: 1},
		{Name: "page", ColumnID: wsColPage, SeedsPerRow: 1},
		{Name: "ship", ColumnID: wsColShip, SeedsPerRow: 1},
		{Name: "lines", ColumnID: wsColLines, SeedsPerRow: 1},
		{Name: "price", ColumnID: wsColPrice, SeedsPerRow: 10},
	})
	return &WebSalesGenerator{
		streams:   ss,
		itemCount: itemRows(opts.ScaleFactor) * domain.SCDGroupSize,
		custCount: customerRows(opts.ScaleFactor),
		siteCount: webSiteRows(opts.ScaleFactor) * domain.SCDGroupSize,
		pageCount: webPageRows(opts.ScaleFactor) * domain.SCDGroupSize,
		shipCount: shipModeRows(opts.ScaleFactor),
		orderCnt:  customerRows(opts.ScaleFactor) * 2,
	}, nil
}

func (g *WebSalesGenerator) Schema() batch.Schema     { return webSalesSchema }
func (g *WebSalesGenerator) TotalRows() (int64, bool) { return 0, false }

func (g *WebSalesGenerator) SkipTo(row int64) error {
	g.streams.Reset()
	g.cursorOrder = 0
	g.cursorLine = 0
	g.haveCursor = false
	var produced int64
	for produced < row {
		lineCount, ok := g.advanceOrder()
		if !ok {
			break
		}
		remaining := row - produced
		if remaining >= lineCount {
			produced += lineCount
			continue
		}
		g.cursorLine = remaining
		g.haveCursor = true
		return nil
	}
	return nil
}

func (g *WebSalesGenerator) advanceOrder() (int64, bool) {
	g.cursorOrder++
	if g.cursorOrder > g.orderCnt {
		return 0, false
	}
	dateOffset := g.streams.Stream("date").NextUniform(0, dateDimDays-1)
	g.orderDate = domain.DateID(int64(domain.NewDateID(1998, 1, 1)) + dateOffset)
	g.custkey = g.streams.Stream("cust").NextUniform(1, g.custCount)
	g.sitekey = g.streams.Stream("site").NextUniform(1, g.siteCount)
	g.pagekey = g.streams.Stream("page").NextUniform(1, g.pageCount)
	g.shipkey = g.streams.Stream("ship").NextUniform(1, g.shipCount)
	g.lineCount = g.streams.Stream("lines").NextUniform(1, maxLinesPerTicket)
	return g.lineCount, true
}

func (g *WebSalesGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if !g.haveCursor {
		if _, ok := g.advanceOrder(); !ok {
			return batch.Row{}, nil
		}
		g.cursorLine = 0
		g.haveCursor = true
	}

	itemkey := g.streams.Stream("item").NextUniform(1, g.itemCount)
	pricing := domain.ComputeSalesPricing(domain.WSPricing, g.streams.Stream("price"))

	g.cursorLine++
	if g.cursorLine >= g.lineCount {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
		g.haveCursor = false
	}

	row := batch.NewRow(len(webSalesSchema.Fields))
	row.Set(0, g.orderDate)
	row.Set(1, itemkey)
	row.Set(2, g.custkey)
	row.Set(3, g.sitekey)
	row.Set(4, g.pagekey)
	row.Set(5, g.shipkey)
	row.Set(6, g.cursorOrder)
	row.Set(7, int32(pricing.Quantity))
	row.Set(8, pricing.WholesaleCost)
	row.Set(9, pricing.ListPrice)
	row.Set(10, pricing.SalesPrice)
	row.Set(11, pricing.ExtSalesPrice)
	row.Set(12, pricing.ExtWholesaleCost)
	row.Set(13, pricing.ExtListPrice)
	row.Set(14, pricing.ExtTax)
	row.Set(15, pricing.CouponAmt)
	row.Set(16, pricing.ExtShipCost)
	row.Set(17, pricing.NetPaid)
	row.Set(18, pricing.NetPaidIncTax)
	row.Set(19, pricing.NetPaidIncShip)
	row.Set(20, pricing.NetPaidIncShipTax)
	row.Set(21, pricing.NetProfit)
	return row, nil
}
