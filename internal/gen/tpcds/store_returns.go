package tpcds

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	srColReturnFlag = 9100
	srColReturn     = 9101
)

// StoreReturnsGenerator replays the exact same ticket/line walk
// StoreSalesGenerator produces (it owns an internal instance built from
// identical seeds) and, for a fraction of lines decided by its own
// dedicated stream, emits a matching return row priced off the replayed
// sale.
type StoreReturnsGenerator struct {
	sales   *StoreSalesGenerator
	streams *seedplan.StreamSet

	returnDateOffset int64
}

func NewStoreReturnsGenerator(opts genopts.Options) (*StoreReturnsGenerator, error) {
	sales, err := NewStoreSalesGenerator(opts)
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "flag", ColumnID: srColReturnFlag, SeedsPerRow: 1},
		{Name: "return", ColumnID: srColReturn, SeedsPerRow: 10},
	})
	return &StoreReturnsGenerator{sales: sales, streams: ss}, nil
}

func (g *StoreReturnsGenerator) Schema() batch.Schema     { return storeReturnsSchema }
func (g *StoreReturnsGenerator) TotalRows() (int64, bool) { return 0, false }

func (g *StoreReturnsGenerator) SkipTo(row int64) error {
	return g.sales.SkipTo(row)
}

// GenerateRow walks the underlying sales line stream until it finds a
// line selected for return (roughly one in ten, matching the reference
// kit's return-rate constant), or the sales generator is exhausted.
func (g *StoreReturnsGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	for {
		saleRow, err := g.sales.GenerateRow(rowNumber)
		if err != nil {
			return batch.Row{}, err
		}
		if saleRow.Values == nil {
			return batch.Row{}, nil
		}
		ticket := g.sales.cursorTicket
		date := g.sales.ticketDate
		cust := g.sales.custkey
		store := g.sales.storekey

		returned := g.streams.Stream("flag").NextUniform(0, 9) == 0
		if err := g.streams.Stream("flag").ConsumeRemainingForRow(); err != nil {
			return batch.Row{}, err
		}
		if !returned {
			continue
		}

		itemkey := saleRow.Values[1].(int64)
		soldQuantity := int64(saleRow.Values[5].(int32))
		sold := domain.Pricing{
			Quantity:      soldQuantity,
			WholesaleCost: saleRow.Values[6].(domain.Decimal),
			ListPrice:     saleRow.Values[7].(domain.Decimal),
			SalesPrice:    saleRow.Values[8].(domain.Decimal),
			TaxPct:        domain.NewDecimal(0, 2, 4),
		}
		returnPricing := domain.ComputeReturnsPricing(domain.SRPricing, g.streams.Stream("return"), sold)
		if err := g.streams.Stream("return").ConsumeRemainingForRow(); err != nil {
			return batch.Row{}, err
		}

		row := batch.NewRow(len(storeReturnsSchema.Fields))
		row.Set(0, date)
		row.Set(1, itemkey)
		row.Set(2, cust)
		row.Set(3, store)
		row.Set(4, ticket)
		row.Set(5, int32(returnPricing.Quantity))
		row.Set(6, returnPricing.ExtSalesPrice)
		row.Set(7, returnPricing.ExtTax)
		row.Set(8, returnPricing.NetPaidIncShipTax)
		row.Set(9, returnPricing.Fee)
		row.Set(10, returnPricing.NetLoss)
		return row, nil
	}
}
