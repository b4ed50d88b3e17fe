package suite

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/gen/tpch"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

func init() {
	register(Suite{
		ID: genopts.TPCH,
		Tables: []TableInfo{
			{Name: "nation", NewGenerator: wrapTPCH(tpch.NewNationGenerator)},
			{Name: "region", NewGenerator: wrapTPCH(tpch.NewRegionGenerator)},
			{Name: "part", NewGenerator: wrapTPCH(tpch.NewPartGenerator)},
			{Name: "supplier", NewGenerator: wrapTPCH(tpch.NewSupplierGenerator)},
			{Name: "partsupp", NewGenerator: wrapTPCH(tpch.NewPartsuppGenerator)},
			{Name: "customer", NewGenerator: wrapTPCH(tpch.NewCustomerGenerator)},
			{Name: "orders", NewGenerator: wrapTPCH(tpch.NewOrdersGenerator)},
			{Name: "lineitem", NewGenerator: wrapTPCH(tpch.NewLineitemGenerator)},
		},
	})
}

// wrapTPCH adapts a tpch.New*Generator constructor (which returns a
// concrete *XGenerator) into the Constructor signature the façade
// registry stores, since Go does not implicitly convert a function type
// whose return type merely satisfies an interface.
func wrapTPCH[T batch.RowGenerator](new func(genopts.Options) (T, error)) Constructor {
	return func(opts genopts.Options) (batch.RowGenerator, error) {
		return new(opts)
	}
}
