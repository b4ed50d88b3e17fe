package tpch

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/domain"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

var (
	shipInstructs = []string{"DELIVER IN PERSON", "COLLECT COD", "NONE", "TAKE BACK RETURN"}
	shipModes     = []string{"REG AIR", "AIR", "RAIL", "SHIP", "TRUCK", "MAIL", "FOB"}
)

// LineitemGenerator walks the same dense order index as OrdersGenerator
// and expands each order into line_count lines, so its row count is only
// knowable by driving the generator.
// It carries its own StreamSet built from the identical column layout so
// that running lineitem standalone consumes seeds exactly as it would
// while generating orders and lineitem together.
type LineitemGenerator struct {
	opts      genopts.Options
	streams   *seedplan.StreamSet
	store     *distro.Store
	custCount int64
	orderRows int64

	// cursor state: which dense order we are inside, and which line of it
	// is next, so SkipTo/GenerateRow can be driven by a global line index.
	cursorOrder int64
	cursorLine  int64
	cursorOF    orderFields
	haveCursor  bool
}

func NewLineitemGenerator(opts genopts.Options) (*LineitemGenerator, error) {
	store, err := distro.Load("tpch", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	return &LineitemGenerator{
		opts: opts, streams: newOrdersLineitemStreamSet(), store: store,
		custCount: customerRows(opts.ScaleFactor),
		orderRows: ordersRows(opts.ScaleFactor),
	}, nil
}

func (g *LineitemGenerator) Schema() batch.Schema { return lineitemSchema }

// TotalRows is unknown: the reference engine itself only learns the true
// count by walking every order's line_count draw.
func (g *LineitemGenerator) TotalRows() (int64, bool) { return 0, false }

// SkipTo is approximate for lineitem: since the row boundary between
// orders is data-dependent, skip_to(n) here walks from the beginning,
// which is correct but not O(1). Bulk parallel planning over lineitem
// should prefer splitting by order range rather than by line row number.
func (g *LineitemGenerator) SkipTo(row int64) error {
	g.streams.Reset()
	g.cursorOrder = 0
	g.cursorLine = 0
	g.haveCursor = false
	var produced int64
	for produced < row {
		of, err := g.advanceOrder()
		if err != nil {
			return err
		}
		if of.lineCount == 0 {
			break
		}
		remaining := row - produced
		if remaining >= of.lineCount {
			produced += of.lineCount
			continue
		}
		g.cursorOF = of
		g.cursorLine = remaining
		g.haveCursor = true
		return nil
	}
	return nil
}

func (g *LineitemGenerator) advanceOrder() (orderFields, error) {
	g.cursorOrder++
	if g.cursorOrder > g.orderRows {
		return orderFields{}, nil
	}
	return computeOrderFields(g.streams, g.custCount, g.cursorOrder)
}

// GenerateRow ignores rowNumber for line placement (lineitem's row
// numbering is sequential-only, consistent with its unknown total) and
// instead advances an internal cursor, exactly mirroring how the
// reference generator produces lineitem: walk orders, emit each order's
// lines, move to the next order.
func (g *LineitemGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if !g.haveCursor {
		of, err := g.advanceOrder()
		if err != nil {
			return batch.Row{}, err
		}
		if of.lineCount == 0 {
			return batch.Row{}, nil
		}
		g.cursorOF = of
		g.cursorLine = 0
		g.haveCursor = true
	}

	of := g.cursorOF
	lineNumber := g.cursorLine + 1

	quantity := g.streams.Stream("comment").NextUniform(1, 50)
	pricing := domain.ComputeSalesPricing(domain.SSPricing, g.streams.Stream("comment"))

	shipDateOffset := g.streams.Stream("comment").NextUniform(1, 121)
	shipDate := of.orderdate + domain.DateID(shipDateOffset)
	commitOffset := g.streams.Stream("comment").NextUniform(30, 90)
	commitDate := of.orderdate + domain.DateID(commitOffset)
	receiptOffset := g.streams.Stream("comment").NextUniform(1, 30)
	receiptDate := shipDate + domain.DateID(receiptOffset)

	cutoff := domain.DateID(orderStartDate + orderSpanDays - 30)
	var returnFlag string
	if receiptDate <= cutoff {
		if g.streams.Stream("comment").NextUniform(0, 1) == 0 {
			returnFlag = "R"
		} else {
			returnFlag = "A"
		}
	} else {
		returnFlag = "N"
	}

	var lineStatus string
	if shipDate <= cutoff {
		lineStatus = "F"
	} else {
		lineStatus = "O"
	}

	shipInstruct := shipInstructs[g.streams.Stream("comment").NextUniform(0, int64(len(shipInstructs)-1))]
	shipMode := shipModes[g.streams.Stream("comment").NextUniform(0, int64(len(shipModes)-1))]

	comment, err := domain.GenerateText(g.store, g.streams.Stream("comment"), 10, 43)
	if err != nil {
		return batch.Row{}, err
	}

	partKey := g.streams.Stream("comment").NextUniform(1, partRows(g.opts.ScaleFactor))
	suppOffset := g.streams.Stream("comment").NextUniform(0, suppliersPerPart-1)
	suppCount := supplierRows(g.opts.ScaleFactor)
	suppKey := (partKey+suppOffset*(suppCount/suppliersPerPart+(partKey-1)/suppCount))%suppCount + 1

	g.cursorLine++
	if g.cursorLine >= of.lineCount {
		if err := g.streams.ConsumeRemaining(); err != nil {
			return batch.Row{}, err
		}
		g.haveCursor = false
	}

	row := batch.NewRow(len(lineitemSchema.Fields))
	row.Set(0, of.orderkey)
	row.Set(1, partKey)
	row.Set(2, suppKey)
	row.Set(3, int32(lineNumber))
	row.Set(4, domain.NewDecimal(quantity*100, 2, 12))
	row.Set(5, pricing.ExtSalesPrice)
	row.Set(6, pricing.DiscountPct)
	row.Set(7, pricing.TaxPct)
	row.Set(8, returnFlag)
	row.Set(9, lineStatus)
	row.Set(10, shipDate)
	row.Set(11, commitDate)
	row.Set(12, receiptDate)
	row.Set(13, shipInstruct)
	row.Set(14, shipMode)
	row.Set(15, comment)
	return row, nil
}
