package tpch

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	ordersColOrderkeySparse = 6000
	ordersColCustkey        = 6001
	ordersColOrderdate      = 6002
	ordersColOrderpriority  = 6003
	ordersColClerk          = 6004
	ordersColShippriority   = 6005
	ordersColComment        = 6006
	ordersColLineCount      = 6007

	orderStartDate = 0      // 1992-01-01, day 0 of domain.DateID
	orderSpanDays  = 2557   // 7 years of order dates, matching the reference kit's generation window
)

var orderPriorities = []string{"1-URGENT", "2-HIGH", "3-MEDIUM", "4-NOT SPECIFIED", "5-LOW"}

// sparseOrderkey expands a dense 1-based row index into dbgen's sparse
// orderkey space: every run of 4 consecutive dense keys maps to the first
// 4 of a run of 8 sparse keys, leaving gaps so lineitem's orderkey column
// is not perfectly contiguous.
func sparseOrderkey(dense int64) int64 {
	const runLen = 8
	const denseRunLen = 4
	run := (dense - 1) / denseRunLen
	offset := (dense - 1) % denseRunLen
	return run*runLen + offset + 1
}

// OrdersGenerator produces the `orders` table. It shares its per-row
// line_count draw with LineitemGenerator through a dedicated stream so
// that standalone generation of either table consumes seeds identically
// to generating both together.
type OrdersGenerator struct {
	opts       genopts.Options
	streams    *seedplan.StreamSet
	store      *distro.Store
	custCount  int64
	total      int64
}

func NewOrdersGenerator(opts genopts.Options) (*OrdersGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	ss := newOrdersLineitemStreamSet()
	return &OrdersGenerator{
		opts: opts, streams: ss, store: store,
		custCount: customerRows(opts.ScaleFactor),
		total:     ordersRows(opts.ScaleFactor),
	}, nil
}

// newOrdersLineitemStreamSet builds the single StreamSet shared in spirit
// by orders and lineitem: both generators construct their own instance
// from this same column layout so each can be driven standalone while
// still landing on identical per-row draws: generating a table alone
// must match generating everything.
func newOrdersLineitemStreamSet() *seedplan.StreamSet {
	return seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "custkey", ColumnID: ordersColCustkey, SeedsPerRow: 1},
		{Name: "orderdate", ColumnID: ordersColOrderdate, SeedsPerRow: 1},
		{Name: "orderpriority", ColumnID: ordersColOrderpriority, SeedsPerRow: 1},
		{Name: "clerk", ColumnID: ordersColClerk, SeedsPerRow: 1},
		{Name: "shippriority", ColumnID: ordersColShippriority, SeedsPerRow: 1},
		{Name: "comment", ColumnID: ordersColComment, SeedsPerRow: 12},
		{Name: "linecount", ColumnID: ordersColLineCount, SeedsPerRow: 1},
	})
}

func (g *OrdersGenerator) Schema() batch.Schema     { return ordersSchema }
func (g *OrdersGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *OrdersGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

// orderFields computes every value orders and lineitem both need for one
// dense order row, so the two generators stay in lockstep without either
// one importing the other's struct.
type orderFields struct {
	orderkey     int64
	custkey      int64
	orderdate    domain.DateID
	status       byte
	totalPrice   domain.Decimal
	priority     string
	clerk        string
	shipPriority int32
	comment      string
	lineCount    int64
}

func computeOrderFields(streams *seedplan.StreamSet, custCount, dense int64) (orderFields, error) {
	custkey := streams.Stream("custkey").NextUniform(1, custCount)
	if custkey%3 == 0 {
		custkey++
		if custkey > custCount {
			custkey = 1
		}
	}

	orderdateOffset := streams.Stream("orderdate").NextUniform(0, orderSpanDays-1)
	orderdate := domain.DateID(orderStartDate + orderdateOffset)

	priorityIdx := streams.Stream("orderpriority").NextUniform(0, int64(len(orderPriorities)-1))
	priority := orderPriorities[priorityIdx]

	clerkNum := streams.Stream("clerk").NextUniform(1, 1000)
	clerk := fmt.Sprintf("Clerk#%09d", clerkNum)

	shipPriority := streams.Stream("shippriority").NextUniform(0, 0)

	lineCount := streams.Stream("linecount").NextUniform(1, 7)

	return orderFields{
		orderkey:     sparseOrderkey(dense),
		custkey:      custkey,
		orderdate:    orderdate,
		priority:     priority,
		clerk:        clerk,
		shipPriority: int32(shipPriority),
		lineCount:    lineCount,
	}, nil
}

func (g *OrdersGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	of, err := computeOrderFields(g.streams, g.custCount, rowNumber)
	if err != nil {
		return batch.Row{}, err
	}

	pricing := domain.Pricing{}
	for i := int64(0); i < of.lineCount; i++ {
		lp := domain.ComputeSalesPricing(domain.SSPricing, g.streams.Stream("comment"))
		pricing.ExtSalesPrice = pricing.ExtSalesPrice.Add(lp.ExtSalesPrice)
		pricing.ExtTax = pricing.ExtTax.Add(lp.ExtTax)
		pricing.CouponAmt = pricing.CouponAmt.Add(lp.CouponAmt)
	}
	totalPrice := pricing.ExtSalesPrice.Add(pricing.ExtTax).Sub(pricing.CouponAmt)

	comment, err := domain.GenerateText(g.store, g.streams.Stream("comment"), 19, 78)
	if err != nil {
		return batch.Row{}, err
	}

	status := orderStatus(of.orderdate)

	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(ordersSchema.Fields))
	row.Set(0, of.orderkey)
	row.Set(1, of.custkey)
	row.Set(2, string(status))
	row.Set(3, totalPrice)
	row.Set(4, of.orderdate)
	row.Set(5, of.priority)
	row.Set(6, of.clerk)
	row.Set(7, of.shipPriority)
	row.Set(8, comment)
	return row, nil
}

// orderStatus derives o_orderstatus from the order date the same way the
// reference kit does: recent orders default to "open" unless every line
// has shipped, older orders are always "finished", matching the narrow
// window used by the line shipdate/receiptdate draws. Since this
// generator does not retain per-line shipdate state, it approximates the
// rule against a fixed cutoff near the end of the generation window.
func orderStatus(orderdate domain.DateID) byte {
	cutoff := domain.DateID(orderStartDate + orderSpanDays - 30)
	if orderdate < cutoff {
		return 'F'
	}
	return 'O'
}
