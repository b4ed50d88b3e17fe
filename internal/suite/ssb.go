package suite

import (
	"github.com/stormdb-contrib/tpcgen/internal/gen/ssb"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func init() {
	register(Suite{
		ID: genopts.SSB,
		Tables: []TableInfo{
			{Name: "customer", NewGenerator: wrapTPCH(ssb.NewCustomerGenerator)},
			{Name: "supplier", NewGenerator: wrapTPCH(ssb.NewSupplierGenerator)},
			{Name: "part", NewGenerator: wrapTPCH(ssb.NewPartGenerator)},
			{Name: "date", NewGenerator: wrapTPCH(ssb.NewDateGenerator)},
			{Name: "lineorder", NewGenerator: wrapTPCH(ssb.NewLineorderGenerator)},
		},
	})
}
