package tpcds

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	custColName   = 8200
	custColFlag   = 8201
	custColBirth  = 8202
	custColEmail  = 8203
)

// CustomerGenerator produces the customer dimension table.
type CustomerGenerator struct {
	streams *seedplan.StreamSet
	total   int64
}

func NewCustomerGenerator(opts genopts.Options) (*CustomerGenerator, error) {
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "name", ColumnID: custColName, SeedsPerRow: 2},
		{Name: "flag", ColumnID: custColFlag, SeedsPerRow: 1},
		{Name: "birth", ColumnID: custColBirth, SeedsPerRow: 1},
		{Name: "email", ColumnID: custColEmail, SeedsPerRow: 1},
	})
	return &CustomerGenerator{streams: ss, total: customerRows(opts.ScaleFactor)}, nil
}

func (g *CustomerGenerator) Schema() batch.Schema     { return customerSchema }
func (g *CustomerGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *CustomerGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

var firstNames = []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda"}
var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}

func (g *CustomerGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	nameStream := g.streams.Stream("name")
	first := firstNames[nameStream.NextUniform(0, int64(len(firstNames)-1))]
	last := lastNames[nameStream.NextUniform(0, int64(len(lastNames)-1))]

	preferred := g.streams.Stream("flag").NextUniform(0, 1) == 1
	birthYear := int32(g.streams.Stream("birth").NextUniform(1924, 1992))
	email := fmt.Sprintf("%s.%s@example.com", first, last)
	_ = g.streams.Stream("email").NextUniform(0, 0)

	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(customerSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, fmt.Sprintf("AAAAAAAA%08d", rowNumber))
	row.Set(2, first)
	row.Set(3, last)
	row.Set(4, preferred)
	row.Set(5, birthYear)
	row.Set(6, email)
	return row, nil
}
