// Package ssb implements the Star Schema Benchmark's five tables:
// customer, supplier, part, date, and the denormalized lineorder fact
// table. SSB's generation kit is a derivative of TPC-H's
// dbgen, so these generators reuse the same domain primitives and
// distribution store as the tpch package rather than duplicating them.
package ssb

import "github.com/stormdb-contrib/tpcgen/internal/batch"

func decimalField(name string) batch.Field {
	return batch.Field{Name: name, Type: batch.Decimal, Precision: 15, Scale: 2}
}

var customerSchema = batch.Schema{Fields: []batch.Field{
	{Name: "c_custkey", Type: batch.Int64},
	{Name: "c_name", Type: batch.Utf8},
	{Name: "c_address", Type: batch.Utf8},
	{Name: "c_city", Type: batch.Utf8},
	{Name: "c_nation", Type: batch.Utf8},
	{Name: "c_region", Type: batch.Utf8},
	{Name: "c_phone", Type: batch.Utf8},
	{Name: "c_mktsegment", Type: batch.Utf8},
}}

var supplierSchema = batch.Schema{Fields: []batch.Field{
	{Name: "s_suppkey", Type: batch.Int64},
	{Name: "s_name", Type: batch.Utf8},
	{Name: "s_address", Type: batch.Utf8},
	{Name: "s_city", Type: batch.Utf8},
	{Name: "s_nation", Type: batch.Utf8},
	{Name: "s_region", Type: batch.Utf8},
	{Name: "s_phone", Type: batch.Utf8},
}}

var partSchema = batch.Schema{Fields: []batch.Field{
	{Name: "p_partkey", Type: batch.Int64},
	{Name: "p_name", Type: batch.Utf8},
	{Name: "p_mfgr", Type: batch.Utf8},
	{Name: "p_category", Type: batch.Utf8},
	{Name: "p_brand1", Type: batch.Utf8},
	{Name: "p_color", Type: batch.Utf8},
	{Name: "p_type", Type: batch.Utf8},
	{Name: "p_size", Type: batch.Int32},
	{Name: "p_container", Type: batch.Utf8},
}}

var dateSchema = batch.Schema{Fields: []batch.Field{
	{Name: "d_datekey", Type: batch.Date32},
	{Name: "d_date", Type: batch.Utf8},
	{Name: "d_dayofweek", Type: batch.Utf8},
	{Name: "d_month", Type: batch.Utf8},
	{Name: "d_year", Type: batch.Int32},
	{Name: "d_yearmonthnum", Type: batch.Int32},
	{Name: "d_yearmonth", Type: batch.Utf8},
	{Name: "d_daynuminweek", Type: batch.Int32},
	{Name: "d_daynuminmonth", Type: batch.Int32},
	{Name: "d_daynuminyear", Type: batch.Int32},
	{Name: "d_lastdayinweekfl", Type: batch.Bool},
	{Name: "d_lastdayinmonthfl", Type: batch.Bool},
	{Name: "d_holidayfl", Type: batch.Bool},
	{Name: "d_weekdayfl", Type: batch.Bool},
}}

var lineorderSchema = batch.Schema{Fields: []batch.Field{
	{Name: "lo_orderkey", Type: batch.Int64},
	{Name: "lo_linenumber", Type: batch.Int32},
	{Name: "lo_custkey", Type: batch.Int64},
	{Name: "lo_partkey", Type: batch.Int64},
	{Name: "lo_suppkey", Type: batch.Int64},
	{Name: "lo_orderdate", Type: batch.Date32},
	{Name: "lo_orderpriority", Type: batch.Utf8},
	{Name: "lo_shippriority", Type: batch.Int32},
	{Name: "lo_quantity", Type: batch.Int32},
	decimalField("lo_extendedprice"),
	decimalField("lo_ordtotalprice"),
	decimalField("lo_discount"),
	decimalField("lo_revenue"),
	decimalField("lo_supplycost"),
	{Name: "lo_tax", Type: batch.Int32},
	{Name: "lo_commitdate", Type: batch.Date32},
	{Name: "lo_shipmode", Type: batch.Utf8},
}}
