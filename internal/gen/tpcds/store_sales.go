package tpcds

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	ssColDate   = 9000
	ssColItem   = 9001
	ssColCust   = 9002
	ssColStore  = 9003
	ssColLines  = 9004
	ssColPrice  = 9005
)

// StoreSalesGenerator produces store_sales, a ticket-oriented fact table:
// each ticket is one transaction with a random line count, matching
// TPC-H lineitem's unknown-total pattern.
type StoreSalesGenerator struct {
	opts      genopts.Options
	streams   *seedplan.StreamSet
	itemCount int64
	custCount int64
	storeCnt  int64
	ticketCnt int64

	cursorTicket int64
	cursorLine   int64
	ticketDate   domain.DateID
	custkey      int64
	storekey     int64
	lineCount    int64
	haveCursor   bool
}

func NewStoreSalesGenerator(opts genopts.Options) (*StoreSalesGenerator, error) {
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "date", ColumnID: ssColDate, SeedsPerRow: 1},
		{Name: "item", ColumnID: ssColItem, SeedsPerRow: 1},
		{Name: "cust", ColumnID: ssColCust, SeedsPerRow: 1},
		{Name: "store", ColumnID: ssColStore, SeedsPerRow: 1},
		{Name: "lines", ColumnID: ssColLines, SeedsPerRow: 1},
		{Name: "price", ColumnID: ssColPrice, SeedsPerRow: 10},
	})
	return &StoreSalesGenerator{
		opts: opts, streams: ss,
		itemCount: itemRows(opts.ScaleFactor) * domain.SCDGroupSize,
		custCount: customerRows(opts.ScaleFactor),
		storeCnt:  storeRows(opts.ScaleFactor) * domain.SCDGroupSize,
		ticketCnt: customerRows(opts.ScaleFactor) * 6,
	}, nil
}

func (g *StoreSalesGenerator) Schema() batch.Schema     { return storeSalesSchema }
func (g *StoreSalesGenerator) TotalRows() (int64, bool) { return 0, false }

func (g *StoreSalesGenerator) SkipTo(row int64) error {
	g.streams.Reset()
	g.cursorTicket = 0
	g.cursorLine = 0
	g.haveCursor = false
	var produced int64
	for produced < row {
		lineCount, ok := g.advanceTicket()
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

func (g *StoreSalesGenerator) advanceTicket() (int64, bool) {
	g.cursorTicket++
	if g.cursorTicket > g.ticketCnt {
		return 0, false
	}
	dateOffset := g.streams.Stream("date").NextUniform(0, dateDimDays-1)
	g.ticketDate = domain.DateID(int64(domain.NewDateID(1998, 1, 1)) + dateOffset)
	g.custkey = g.streams.Stream("cust").NextUniform(1, g.custCount)
	g.storekey = g.streams.Stream("store").NextUniform(1, g.storeCnt)
	g.lineCount = g.streams.Stream("lines").NextUniform(1, maxLinesPerTicket)
	return g.lineCount, true
}

func (g *StoreSalesGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if !g.haveCursor {
		if _, ok := g.advanceTicket(); !ok {
			return batch.Row{}, nil
		}
		g.cursorLine = 0
		g.haveCursor = true
	}

	itemkey := g.streams.Stream("item").NextUniform(1, g.itemCount)
	pricing := domain.ComputeSalesPricing(domain.SSPricing, g.streams.Stream("price"))

	g.cursorLine++
	if g.cursorLine >= g.lineCount {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
		g.haveCursor = false
	}

	row := batch.NewRow(len(storeSalesSchema.Fields))
	row.Set(0, g.ticketDate)
	row.Set(1, itemkey)
	row.Set(2, g.custkey)
	row.Set(3, g.storekey)
	row.Set(4, g.cursorTicket)
	row.Set(5, int32(pricing.Quantity))
	row.Set(6, pricing.WholesaleCost)
	row.Set(7, pricing.ListPrice)
	row.Set(8, pricing.SalesPrice)
	row.Set(9, pricing.ExtSalesPrice)
	row.Set(10, pricing.ExtWholesaleCost)
	row.Set(11, pricing.ExtListPrice)
	row.Set(12, pricing.ExtTax)
	row.Set(13, pricing.CouponAmt)
	row.Set(14, pricing.NetPaid)
	row.Set(15, pricing.NetPaidIncTax)
	row.Set(16, pricing.NetProfit)
	return row, nil
}
