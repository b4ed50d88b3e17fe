package gentest

import (
	"testing"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/parallel"
)

var fakeSchema = batch.Schema{Fields: []batch.Field{
	{Name: "id", Type: batch.Int64},
	{Name: "value", Type: batch.Int64},
}}

// fakeGenerator is a minimal, fully deterministic RowGenerator: row n has
// id=n, value=n*n. It exists only to exercise the gentest helpers
// themselves against a known-correct generator.
type fakeGenerator struct {
	total int64
	cur   int64
}

func newFakeGenerator(total int64) *fakeGenerator { return &fakeGenerator{total: total} }

func (g *fakeGenerator) Schema() batch.Schema { return fakeSchema }

func (g *fakeGenerator) SkipTo(row int64) error {
	g.cur = row
	return nil
}

func (g *fakeGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	g.cur++
	if g.cur > g.total {
		return batch.Row{}, nil
	}
	row := batch.NewRow(2)
	row.Set(0, g.cur)
	row.Set(1, g.cur*g.cur)
	return row, nil
}

func (g *fakeGenerator) TotalRows() (int64, bool) { return g.total, true }

func newFake() batch.RowGenerator { return newFakeGenerator(100) }

func TestAssertDeterministicPassesForFake(t *testing.T) {
	AssertDeterministic(t, newFake, 1, 20)
}

func TestAssertSkipEqualsRegeneratePassesForFake(t *testing.T) {
	AssertSkipEqualsRegenerate(t, newFake, 30, 10)
}

func TestAssertPartitionConcatenationPassesForFake(t *testing.T) {
	ranges := parallel.PlanRanges(4, 0, 100, 100, true)
	AssertPartitionConcatenation(t, newFake, ranges)
}

func TestAssertColumnProjection(t *testing.T) {
	full := fakeSchema
	idx, err := full.Project([]string{"value"})
	if err != nil {
		t.Fatal(err)
	}
	projected := full.Projected(idx)

	g := newFakeGenerator(10)
	row, err := g.GenerateRow(1)
	if err != nil {
		t.Fatal(err)
	}
	projectedRow := batch.NewRow(1)
	projectedRow.Set(0, row.Values[1])

	AssertColumnProjection(t, full, projected, row, projectedRow)
}
