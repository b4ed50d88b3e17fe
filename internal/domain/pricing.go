package domain

import "github.com/stormdb-contrib/tpcgen/internal/rng"

// PricingID selects the quantity/price bounds for one of the sales
// channels or their matching returns variant.
type PricingID int

const (
	SSPricing PricingID = iota
	CSPricing
	WSPricing
	SRPricing
	CRPricing
	WRPricing
)

var pricingBounds = map[PricingID]struct {
	QtyMax  int64
	WSMaxC  int64 // wholesale cost max, in cents
}{
	SSPricing: {QtyMax: 100, WSMaxC: 8000},
	CSPricing: {QtyMax: 100, WSMaxC: 8000},
	WSPricing: {QtyMax: 100, WSMaxC: 8000},
}

// Pricing is the pricing sub-struct shared by sales and returns row
// structs: a quantity plus 21 decimal amounts, the last five of which
// are set only by returns pricing.
type Pricing struct {
	Quantity           int64
	WholesaleCost      Decimal
	ListPrice          Decimal
	SalesPrice         Decimal
	ExtSalesPrice      Decimal
	ExtWholesaleCost   Decimal
	ExtListPrice       Decimal
	ExtTax             Decimal
	CouponAmt          Decimal
	ExtShipCost        Decimal
	NetPaid            Decimal
	NetPaidIncTax      Decimal
	NetPaidIncShip     Decimal
	NetPaidIncShipTax  Decimal
	NetProfit          Decimal
	DiscountPct        Decimal
	TaxPct             Decimal

	// Returns-only fields, zero for sales pricing.
	RefundedCash    Decimal
	ReversedCharge  Decimal
	StoreCredit     Decimal
	Fee             Decimal
	NetLoss         Decimal
}

// ComputeSalesPricing runs the sales pricing engine for one order line.
func ComputeSalesPricing(id PricingID, s *rng.Stream) Pricing {
	bounds := pricingBounds[id]

	qty := s.NextUniform(1, bounds.QtyMax)
	wholesale := NewDecimal(s.NextUniform(100, bounds.WSMaxC), 2, 7)
	markupPct := float64(s.NextUniform(0, 200)) / 100.0
	list := DecimalFromFloat(wholesale.Float64()*(1+markupPct), 2, 7)
	discountPct := float64(s.NextUniform(0, 50)) / 100.0
	sales := DecimalFromFloat(list.Float64()*(1-discountPct), 2, 7)

	extSales := DecimalFromFloat(sales.Float64()*float64(qty), 2, 7)
	extWholesale := DecimalFromFloat(wholesale.Float64()*float64(qty), 2, 7)
	extList := DecimalFromFloat(list.Float64()*float64(qty), 2, 7)

	var coupon Decimal
	if s.NextUniform(1, 100) <= 20 { // coupon applied to 20% of lines
		coupon = extSales
	}

	shipPct := s.NextDouble01() * 0.5
	extShip := DecimalFromFloat(list.Float64()*shipPct*float64(qty), 2, 7)

	taxPct := s.NextDouble01() * 0.09
	tax := DecimalFromFloat((extSales.Float64()-coupon.Float64())*taxPct, 2, 7)

	netPaid := extSales.Sub(coupon)
	netPaidIncTax := netPaid.Add(tax)
	netPaidIncShip := netPaid.Add(extShip)
	netPaidIncShipTax := netPaidIncShip.Add(tax)
	netProfit := netPaid.Sub(extWholesale)

	return Pricing{
		Quantity:          qty,
		WholesaleCost:     wholesale,
		ListPrice:         list,
		SalesPrice:        sales,
		ExtSalesPrice:     extSales,
		ExtWholesaleCost:  extWholesale,
		ExtListPrice:      extList,
		ExtTax:            tax,
		CouponAmt:         coupon,
		ExtShipCost:       extShip,
		NetPaid:           netPaid,
		NetPaidIncTax:     netPaidIncTax,
		NetPaidIncShip:    netPaidIncShip,
		NetPaidIncShipTax: netPaidIncShipTax,
		NetProfit:         netProfit,
		DiscountPct:       DecimalFromFloat(discountPct*100, 2, 5),
		TaxPct:            DecimalFromFloat(taxPct*100, 2, 5),
	}
}

// ComputeReturnsPricing is the returns pricing
// variant: it takes the sold quantity/prices as inputs, draws a returned
// quantity bounded by what was sold, and splits the refund between cash,
// reversed charge, and store credit by two uniform percentages.
func ComputeReturnsPricing(id PricingID, s *rng.Stream, sold Pricing) Pricing {
	returnQty := s.NextUniform(1, maxInt64(sold.Quantity, 1))

	unitSales := 0.0
	if sold.Quantity > 0 {
		unitSales = sold.SalesPrice.Float64()
	}
	extSales := DecimalFromFloat(unitSales*float64(returnQty), 2, 7)

	unitWholesale := 0.0
	if sold.Quantity > 0 {
		unitWholesale = sold.WholesaleCost.Float64()
	}
	extWholesale := DecimalFromFloat(unitWholesale*float64(returnQty), 2, 7)

	taxPct := sold.TaxPct.Float64() / 100.0
	tax := DecimalFromFloat(extSales.Float64()*taxPct, 2, 7)

	shipPct := s.NextDouble01() * 0.5
	extShip := DecimalFromFloat(sold.ListPrice.Float64()*shipPct*float64(returnQty), 2, 7)

	fee := DecimalFromFloat(s.NextDouble01()*100, 2, 7)

	cashPct := s.NextDouble01()
	reversedPct := s.NextDouble01() * (1 - cashPct)
	storePct := 1 - cashPct - reversedPct

	netPaidIncShipTax := extSales.Add(tax).Add(extShip)
	refundedCash := DecimalFromFloat(netPaidIncShipTax.Float64()*cashPct, 2, 7)
	reversedCharge := DecimalFromFloat(netPaidIncShipTax.Float64()*reversedPct, 2, 7)
	storeCredit := DecimalFromFloat(netPaidIncShipTax.Float64()*storePct, 2, 7)

	netLoss := netPaidIncShipTax.
		Sub(storeCredit).
		Sub(refundedCash).
		Sub(reversedCharge).
		Add(fee)

	return Pricing{
		Quantity:          returnQty,
		WholesaleCost:     sold.WholesaleCost,
		ListPrice:         sold.ListPrice,
		SalesPrice:        sold.SalesPrice,
		ExtSalesPrice:     extSales,
		ExtWholesaleCost:  extWholesale,
		ExtTax:            tax,
		ExtShipCost:       extShip,
		NetPaidIncShipTax: netPaidIncShipTax,
		RefundedCash:      refundedCash,
		ReversedCharge:    reversedCharge,
		StoreCredit:       storeCredit,
		Fee:               fee,
		NetLoss:           netLoss,
	}
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
