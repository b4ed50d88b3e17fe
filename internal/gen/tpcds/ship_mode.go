package tpcds

import (
	"fmt"

	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/distro"
	"github.com/stormdb-contrib/tpcgen/internal/seedplan"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

const (
	shipModeColType     = 7100
	shipModeColCode     = 7101
	shipModeColCarrier  = 7102
	shipModeColContract = 7103
)

var shipModeTypes = []string{"AIR", "RAIL", "SHIP", "TRUCK", "SURFACE", "LIBRARY"}
var shipModeCodes = []string{"REGULAR", "OVERNIGHT", "EXPRESS"}

// ShipModeGenerator produces the ship_mode table.
type ShipModeGenerator struct {
	streams *seedplan.StreamSet
	modes   *distro.Distribution
	total   int64
}

func NewShipModeGenerator(opts genopts.Options) (*ShipModeGenerator, error) {
	store, err := distro.Load("tpcds", opts.DistributionDir)
	if err != nil {
		return nil, err
	}
	modes, err := store.Find("modes")
	if err != nil {
		return nil, err
	}
	ss := seedplan.NewStreamSet(seedplan.TPCDSSeedBase, []seedplan.ColumnSpec{
		{Name: "type", ColumnID: shipModeColType, SeedsPerRow: 1},
		{Name: "code", ColumnID: shipModeColCode, SeedsPerRow: 1},
		{Name: "carrier", ColumnID: shipModeColCarrier, SeedsPerRow: 1},
		{Name: "contract", ColumnID: shipModeColContract, SeedsPerRow: 1},
	})
	return &ShipModeGenerator{streams: ss, modes: modes, total: shipModeRows(opts.ScaleFactor)}, nil
}

func (g *ShipModeGenerator) Schema() batch.Schema     { return shipModeSchema }
func (g *ShipModeGenerator) TotalRows() (int64, bool) { return g.total, true }

func (g *ShipModeGenerator) SkipTo(row int64) error {
	g.streams.SkipRows(row)
	return nil
}

func (g *ShipModeGenerator) GenerateRow(rowNumber int64) (batch.Row, error) {
	if rowNumber > g.total {
		return batch.Row{}, nil
	}
	typeIdx := g.streams.Stream("type").NextUniform(0, int64(len(shipModeTypes)-1))
	codeIdx := g.streams.Stream("code").NextUniform(0, int64(len(shipModeCodes)-1))
	carrier := g.modes.Pick(g.streams.Stream("carrier")).Text
	contractNum := g.streams.Stream("contract").NextUniform(1000000, 9999999)

	if err := g.streams.ConsumeRemaining(); err != nil {
		return batch.Row{}, err
	}

	row := batch.NewRow(len(shipModeSchema.Fields))
	row.Set(0, rowNumber)
	row.Set(1, fmt.Sprintf("AAAAAAAA%08d", rowNumber))
	row.Set(2, shipModeTypes[typeIdx])
	row.Set(3, shipModeCodes[codeIdx])
	row.Set(4, carrier)
	row.Set(5, fmt.Sprintf("%07d", contractNum))
	return row, nil
}
