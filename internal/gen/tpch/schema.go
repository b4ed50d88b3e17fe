// Package tpch implements the eight TPC-H row generators: nation,
// region, part, supplier, partsupp, customer, and the coupled
// orders+lineitem pair.
package tpch

import "github.com/stormdb-contrib/tpcgen/internal/batch"

func decimalField(name string) batch.Field {
	return batch.Field{Name: name, Type: batch.Decimal, Precision: 15, Scale: 2}
}

var nationSchema = batch.Schema{Fields: []batch.Field{
	{Name: "n_nationkey", Type: batch.Int64},
	{Name: "n_name", Type: batch.Utf8},
	{Name: "n_regionkey", Type: batch.Int64},
	{Name: "n_comment", Type: batch.Utf8},
}}

var regionSchema = batch.Schema{Fields: []batch.Field{
	{Name: "r_regionkey", Type: batch.Int64},
	{Name: "r_name", Type: batch.Utf8},
	{Name: "r_comment", Type: batch.Utf8},
}}

var partSchema = batch.Schema{Fields: []batch.Field{
	{Name: "p_partkey", Type: batch.Int64},
	{Name: "p_name", Type: batch.Utf8},
	{Name: "p_mfgr", Type: batch.Utf8},
	{Name: "p_brand", Type: batch.Utf8},
	{Name: "p_type", Type: batch.Utf8},
	{Name: "p_size", Type: batch.Int32},
	{Name: "p_container", Type: batch.Utf8},
	decimalField("p_retailprice"),
	{Name: "p_comment", Type: batch.Utf8},
}}

var supplierSchema = batch.Schema{Fields: []batch.Field{
	{Name: "s_suppkey", Type: batch.Int64},
	{Name: "s_name", Type: batch.Utf8},
	{Name: "s_address", Type: batch.Utf8},
	{Name: "s_nationkey", Type: batch.Int64},
	{Name: "s_phone", Type: batch.Utf8},
	decimalField("s_acctbal"),
	{Name: "s_comment", Type: batch.Utf8},
}}

var partsuppSchema = batch.Schema{Fields: []batch.Field{
	{Name: "ps_partkey", Type: batch.Int64},
	{Name: "ps_suppkey", Type: batch.Int64},
	{Name: "ps_availqty", Type: batch.Int32},
	decimalField("ps_supplycost"),
	{Name: "ps_comment", Type: batch.Utf8},
}}

var customerSchema = batch.Schema{Fields: []batch.Field{
	{Name: "c_custkey", Type: batch.Int64},
	{Name: "c_name", Type: batch.Utf8},
	{Name: "c_address", Type: batch.Utf8},
	{Name: "c_nationkey", Type: batch.Int64},
	{Name: "c_phone", Type: batch.Utf8},
	decimalField("c_acctbal"),
	{Name: "c_mktsegment", Type: batch.Utf8},
	{Name: "c_comment", Type: batch.Utf8},
}}

var ordersSchema = batch.Schema{Fields: []batch.Field{
	{Name: "o_orderkey", Type: batch.Int64},
	{Name: "o_custkey", Type: batch.Int64},
	{Name: "o_orderstatus", Type: batch.Utf8},
	decimalField("o_totalprice"),
	{Name: "o_orderdate", Type: batch.Date32},
	{Name: "o_orderpriority", Type: batch.Utf8},
	{Name: "o_clerk", Type: batch.Utf8},
	{Name: "o_shippriority", Type: batch.Int32},
	{Name: "o_comment", Type: batch.Utf8},
}}

var lineitemSchema = batch.Schema{Fields: []batch.Field{
	{Name: "l_orderkey", Type: batch.Int64},
	{Name: "l_partkey", Type: batch.Int64},
	{Name: "l_suppkey", Type: batch.Int64},
	{Name: "l_linenumber", Type: batch.Int32},
	decimalField("l_quantity"),
	decimalField("l_extendedprice"),
	decimalField("l_discount"),
	decimalField("l_tax"),
	{Name: "l_returnflag", Type: batch.Utf8},
	{Name: "l_linestatus", Type: batch.Utf8},
	{Name: "l_shipdate", Type: batch.Date32},
	{Name: "l_commitdate", Type: batch.Date32},
	{Name: "l_receiptdate", Type: batch.Date32},
	{Name: "l_shipinstruct", Type: batch.Utf8},
	{Name: "l_shipmode", Type: batch.Utf8},
	{Name: "l_comment", Type: batch.Utf8},
}}
