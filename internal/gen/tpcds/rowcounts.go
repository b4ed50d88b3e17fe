package tpcds

import "github.com/stormdb-contrib/tpcgen/internal/rowcount"

// Row-count formulas. date_dim/time_dim/income_band/
// reason/ship_mode are fixed reference tables; item/store/customer/
// call_center/web_site/web_page scale with SF (or stay fixed for the
// smallest channel dimensions); every sales/returns fact pair's total
// depends on a per-ticket/per-order line count draw, so each reports
// unknown like TPC-H lineitem.
var (
	dateDimRows    = rowcount.Fixed(dateDimDays)
	timeDimRows    = rowcount.Fixed(86400)
	incomeBandRows = rowcount.Fixed(20)
	reasonRows     = rowcount.Fixed(35)
	shipModeRows   = rowcount.Fixed(20)

	itemRows     = rowcount.Linear(3_000)
	storeRows    = rowcount.Linear(12)
	customerRows = rowcount.Linear(10_000)

	callCenterRows = rowcount.Fixed(6)
	webSiteRows    = rowcount.Fixed(1)
	webPageRows    = rowcount.Linear(4)

	storeSalesRows      = rowcount.Unknown
	storeReturnsRows    = rowcount.Unknown
	catalogSalesRows    = rowcount.Unknown
	catalogReturnsRows  = rowcount.Unknown
	webSalesRows        = rowcount.Unknown
	webReturnsRows      = rowcount.Unknown
)

const maxLinesPerTicket = 10
