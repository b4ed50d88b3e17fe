package ssb

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	loColCustkey = 1300
	loColSuppkey = 1301
	loColPartkey = 1302
	loColOrderdate = 1303
	loColPriority  = 1304
	loColQuantity  = 1305
	loColLinecount = 1306

	loStartDate = 0 // DateID of 1992-01-01, the date dimension's first day
	loSpanDays  = 2557
)

var orderPriorities = []string{"1-URGENT", "2-HIGH", "3-MEDIUM", "4-NOT SPECIFIED", "5-LOW"}
var shipModes = []string{"REG AIR", "AIR", "RAIL", "SHIP", "TRUCK", "MAIL", "FOB"}

// LineorderGenerator produces SSB's single denormalized fact table,
// combining what TPC-H splits into orders and lineitem.
// Its total row count is unknown for the same reason TPC-H lineitem's is:
// each order draws its line count at generation time.
type LineorderGenerator struct {
	opts        genopts.Options
	streams     *seedplan.StreamSet
	custCount   int64
	suppCount   int64
	partCount   int64
	orderCount  int64

	cursorOrder int64
	cursorLine  int64
	orderkey    int64
	custkey     int64
	orderdate   domain.DateID
	priority    string
	lineCount   int64
	haveCursor  bool
}

func NewLineorderGenerator(opts genopts.Options) (*LineorderGenerator, error) {
	ss := seedplan.NewStreamSet(seedplan.TPCHSeedBase, []seedplan.ColumnSpec{
		{Name: "custkey", ColumnID: loColCustkey, SeedsPerRow: 1},
		{Name: "suppkey", ColumnID: loColSuppkey, SeedsPerRow: 1},
		{Name: "partkey", ColumnID: loColPartkey, SeedsPerRow: 1},
		{Name: "orderdate", ColumnID: loColOrderdate, SeedsPerRow: 1},
		{Name: "priority", ColumnID: loColPriority, SeedsPerRow: 1},
		{Name: "quantity", ColumnID: loColQuantity, SeedsPerRow: 10},
		{Name: "linecount", ColumnID: loColLinecount, SeedsPerRow: 1},
	})
	return &LineorderGenerator{
		opts: opts, streams: ss,
		custCount:  customerRows(opts.ScaleFactor),
		suppCount:  supplierRows(opts.ScaleFactor),
		partCount:  partRows(opts.ScaleFactor),
		orderCount: customerRows(opts.ScaleFactor) / 3,
	}, nil
}

func (g *LineorderGenerator) Schema() batch.Schema     { return lineorderSchema }
func (g *LineorderGenerator) TotalRows() (int64, bool) { return 0, false }

func (g *LineorderGenerator) SkipTo(row int64) error {
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

func (g *LineorderGenerator) advanceOrder() (int64, bool) {
	g.cursorOrder++
	if g.cursorOrder > g.orderCount {
		return 0, false
	}
	g.orderkey = g.cursorOrder
	g.custkey = g.streams.Stream("custkey").NextUniform(1, g.custCount)
	offset := g.streams.Stream("orderdate").NextUniform(0, loSpanDays-1)
	g.orderdate = domain.DateID(loStartDate + offset)
	priIdx := g.streams.Stream("priority").NextUniform(0, int64(len(orderPriorities)-1))
	g.priority = orderPriorities[priIdx]
	g.lineCount = g.streams.Stream("linecount").NextUniform(1, maxLinesPerOrder)
	return g.lineCount, true
}

func (g *LineorderGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if !g.haveCursor {
		if _, ok := g.advanceOrder(); !ok {
			return batch.Row{}, nil
		}
		g.cursorLine = 0
		g.haveCursor = true
	}

	lineNumber := g.cursorLine + 1
	partkey := g.streams.Stream("partkey").NextUniform(1, g.partCount)
	suppkey := g.streams.Stream("suppkey").NextUniform(1, g.suppCount)

	qtyStream := g.streams.Stream("quantity")
	quantity := qtyStream.NextUniform(1, 50)
	unitPriceCents := qtyStream.NextUniform(100, 200000)
	extPrice := domain.NewDecimal(unitPriceCents*quantity, 2, 12)
	discountPct := qtyStream.NextUniform(0, 10)
	discount := domain.NewDecimal(discountPct, 2, 4)
	revenue := domain.NewDecimal(extPrice.Number*(100-discountPct)/100, 2, 12)
	supplyCost := domain.NewDecimal(qtyStream.NextUniform(100, 100000), 2, 12)
	tax := qtyStream.NextUniform(0, 8)
	commitOffset := qtyStream.NextUniform(30, 90)
	commitDate := g.orderdate + domain.DateID(commitOffset)
	shipModeIdx := qtyStream.NextUniform(0, int64(len(shipModes)-1))

	ordTotal := domain.NewDecimal(extPrice.Number*g.lineCount, 2, 12)

	g.cursorLine++
	if g.cursorLine >= g.lineCount {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
		g.haveCursor = false
	}

	row := batch.NewRow(len(lineorderSchema.Fields))
	row.Set(0, g.orderkey)
	row.Set(1, int32(lineNumber))
	row.Set(2, g.custkey)
	row.Set(3, partkey)
	row.Set(4, suppkey)
	row.Set(5, g.orderdate)
	row.Set(6, g.priority)
	row.Set(7, int32(0))
	row.Set(8, int32(quantity))
	row.Set(9, extPrice)
	row.Set(10, ordTotal)
	row.Set(11, discount)
	row.Set(12, revenue)
	row.Set(13, supplyCost)
	row.Set(14, int32(tax))
	row.Set(15, commitDate)
	row.Set(16, shipModes[shipModeIdx])
	return row, nil
}
