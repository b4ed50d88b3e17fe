package ssb

import (
	"math"

	"github.com/stormdb-contrib/tpcgen/internal/rowcount"
)

// Row-count formulas per SSB's published scaling rules:
// customer and supplier scale linearly with SF, part scales with
// 1+log2(SF) the way dbgen's parts count does, date is fixed to the
// 7-year generation window, and lineorder's total is only known by
// walking every order's line count, exactly like TPC-H lineitem.
var (
	customerRows = rowcount.Linear(30_000)
	supplierRows = rowcount.Linear(2_000)
	dateRows     = rowcount.Fixed(2_556)
	lineorderRows = rowcount.Unknown
)

func partRows(scale float64) int64 {
	if scale <= 0 {
		scale = 1
	}
	return int64(200_000 * (1 + math.Log2(scale)))
}

const maxLinesPerOrder = 7
