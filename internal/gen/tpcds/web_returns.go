package tpcds

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	wrColReturnFlag = 9500
	wrColReturn     = 9501
)

// WebReturnsGenerator replays WebSalesGenerator's exact order/line walk
// (it owns an internal instance built from identical seeds) and, for a
// fraction of lines decided by its own dedicated stream, emits a
// matching return row priced off the replayed sale — the web-channel
// counterpart of StoreReturnsGenerator/CatalogReturnsGenerator.
type WebReturnsGenerator struct {
	sales   *WebSalesGenerator
	streams *seedplan.StreamSet
}

func NewWebReturnsGenerator(opts genopts.Options) (*WebReturnsGenerator, error) {
	sales, err := NewWebSalesGenerator(opts)
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "flag", ColumnID: wrColReturnFlag, SeedsPerRow: 1},
		{Name: "return", ColumnID: wrColReturn, SeedsPerRow: 10},
	})
	return &WebReturnsGenerator{sales: sales, streams: ss}, nil
}

func (g *WebReturnsGenerator) Schema() batch.Schema     { return webReturnsSchema }
func (g *WebReturnsGenerator) TotalRows() (int64, bool) { return 0, false }

func (g *WebReturnsGenerator) SkipTo(row int64) error {
	return g.sales.SkipTo(row)
}

// GenerateRow walks the underlying sales line stream until it finds a
// line selected for return (roughly one in ten, matching the reference
// kit's return-rate constant), or the sales generator is exhausted.
func (g *WebReturnsGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	for {
		saleRow, err := g.sales.GenerateRow(rowNumber)
		if err != nil {
			return batch.Row{}, err
		}
		if saleRow.Values == nil {
			return batch.Row{}, nil
		}
		order := g.sales.cursorOrder
		date := g.sales.orderDate
		cust := g.sales.custkey
		site := g.sales.sitekey
		page := g.sales.pagekey

		returned := g.streams.Stream("flag").NextUniform(0, 9) == 0
		if err := g.streams.Stream("flag").ConsumeRemainingForRow(); err != nil {
			return batch.Row{}, err
		}
		if !returned {
			continue
		}

		itemkey := saleRow.Values[1].(int64)
		soldQuantity := int64(saleRow.Values[7].(int32))
		sold := domain.Pricing{
			Quantity:      soldQuantity,
			WholesaleCost: saleRow.Values[8].(domain.Decimal),
			ListPrice:     saleRow.Values[9].(domain.Decimal),
			SalesPrice:    saleRow.Values[10].(domain.Decimal),
			TaxPct:        domain.NewDecimal(0, 2, 4),
		}
		returnPricing := domain.ComputeReturnsPricing(domain.WRPricing, g.streams.Stream("return"), sold)
		if err := g.streams.Stream("return").ConsumeRemainingForRow(); err != nil {
			return batch.Row{}, err
		}

		row := batch.NewRow(len(webReturnsSchema.Fields))
		row.Set(0, date)
		row.Set(1, itemkey)
		row.Set(2, cust)
		row.Set(3, site)
		row.Set(4, page)
		row.Set(5, order)
		row.Set(6, int32(returnPricing.Quantity))
		row.Set(7, returnPricing.ExtSalesPrice)
		row.Set(8, returnPricing.ExtTax)
		row.Set(9, returnPricing.NetPaidIncShipTax)
		row.Set(10, returnPricing.Fee)
		row.Set(11, returnPricing.RefundedCash)
		row.Set(12, returnPricing.ReversedCharge)
		row.Set(13, returnPricing.StoreCredit)
		row.Set(14, returnPricing.NetLoss)
		return row, nil
	}
}
