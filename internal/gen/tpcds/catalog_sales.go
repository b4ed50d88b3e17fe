package tpcds

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	csColDate = 9200
	csColItem = 9201
	csColCust = 9202
	csColCC   = 9203
	csColShip = 9204
	csColLines = 9205
	csColPrice = 9206
)

// CatalogSalesGenerator produces catalog_sales: an order-oriented fact
// table with the same per-order random line count StoreSalesGenerator
// uses for its tickets, but billed through a call center and a shipping
// method rather than a storefront.
type CatalogSalesGenerator struct {
	streams   *seedplan.StreamSet
	itemCount int64
	custCount int64
	ccCount   int64
	shipCount int64
	orderCnt  int64

	cursorOrder int64
	cursorLine  int64
	orderDate   domain.DateID
	custkey     int64
	cckey       int64
	shipkey     int64
	lineCount   int64
	haveCursor  bool
}

func NewCatalogSalesGenerator(opts genopts.Options) (*CatalogSalesGenerator, error) {
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "date", ColumnID: csColDate, SeedsPerRow: 1},
		{Name: "item", ColumnID: csColItem, SeedsPerRow: 1},
		{Name: "cust", ColumnID: csColCust, SeedsPerRow: 1},
		{Name: "cc", ColumnID: csColCC, SeedsPerRow: 1},
		{Name: "ship", ColumnID: csColShip, SeedsPerRow: 1},
		{Name: "lines", ColumnID: csColLines, SeedsPerRow: 1},
		{Name: "price", ColumnID: csColPrice, SeedsPerRow: 10},
	})
	return &CatalogSalesGenerator{
		streams:   ss,
		itemCount: itemRows(opts.ScaleFactor) * domain.SCDGroupSize,
		custCount: customerRows(opts.ScaleFactor),
		ccCount:   callCenterRows(opts.ScaleFactor) * domain.SCDGroupSize,
		shipCount: shipModeRows(opts.ScaleFactor),
		orderCnt:  customerRows(opts.ScaleFactor) * 3,
	}, nil
}

func (g *CatalogSalesGenerator) Schema() batch.Schema     { return catalogSalesSchema }
func (g *CatalogSalesGenerator) TotalRows() (int64, bool) { return 0, false }

func (g *CatalogSalesGenerator) SkipTo(row int64) error {
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

func (g *CatalogSalesGenerator) advanceOrder() (int64, bool) {
	g.cursorOrder++
	if g.cursorOrder > g.orderCnt {
		return 0, false
	}
	dateOffset := g.streams.Stream("date").NextUniform(0, dateDimDays-1)
	g.orderDate = domain.DateID(int64(domain.NewDateID(1998, 1, 1)) + dateOffset)
	g.custkey = g.streams.Stream("cust").NextUniform(1, g.custCount)
	g.cckey = g.streams.Stream("cc").NextUniform(1, g.ccCount)
	g.shipkey = g.streams.Stream("ship").NextUniform(1, g.shipCount)
	g.lineCount = g.streams.Stream("lines").NextUniform(1, maxLinesPerTicket)
	return g.lineCount, true
}

func (g *CatalogSalesGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if !g.haveCursor {
		if _, ok := g.advanceOrder(); !ok {
			return batch.Row{}, nil
		}
		g.cursorLine = 0
		g.haveCursor = true
	}

	itemkey := g.streams.Stream("item").NextUniform(1, g.itemCount)
	pricing := domain.ComputeSalesPricing(domain.CSPricing, g.streams.Stream("price"))

	g.cursorLine++
	if g.cursorLine >= g.lineCount {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
		g.haveCursor = false
	}

	row := batch.NewRow(len(catalogSalesSchema.Fields))
	row.Set(0, g.orderDate)
	row.Set(1, itemkey)
	row.Set(2, g.custkey)
	row.Set(3, g.cckey)
	row.Set(4, g.shipkey)
	row.Set(5, g.cursorOrder)
	row.Set(6, int32(pricing.Quantity))
	row.Set(7, pricing.WholesaleCost)
	row.Set(8, pricing.ListPrice)
	row.Set(9, pricing.SalesPrice)
	row.Set(10, pricing.ExtSalesPrice)
	row.Set(11, pricing.ExtWholesaleCost)
	row.Set(12, pricing.ExtListPrice)
	row.Set(13, pricing.ExtTax)
	row.Set(14, pricing.CouponAmt)
	row.Set(15, pricing.ExtShipCost)
	row.Set(16, pricing.NetPaid)
	row.Set(17, pricing.NetPaidIncTax)
	row.Set(18, pricing.NetPaidIncShip)
	row.Set(19, pricing.NetPaidIncShipTax)
	row.Set(20, pricing.NetProfit)
	return row, nil
}
