package tpch

import "github.com/stormdb-contrib/tpcgen/internal/rowcount"

// Row-count formulas for each table, as a function of scale factor.
var (
	nationRows   = rowcount.Fixed(25)
	regionRows   = rowcount.Fixed(5)
	partRows     = rowcount.Linear(200_000)
	supplierRows = rowcount.Linear(10_000)
	partsuppRows = rowcount.Linear(800_000) // 4 suppliers per part
	customerRows = rowcount.Linear(150_000)
	ordersRows   = rowcount.Linear(1_500_000)
	// lineitem's row count is unknown at the resolver level: each order
	// draws a line_count in [1,7] from the dedicated linecount stream, so
	// the total depends on walking that stream.
	lineitemRows = rowcount.Unknown
)

const suppliersPerPart = 4
