// Package rowcount implements the table row-count resolver: for a
// (suite, table, scale) it returns either a known exact row count or
// reports "unknown" when the count depends on per-row random draws
// (TPC-H lineitem, TPC-DS sales/returns line counts, SSB lineorder).
package rowcount

// Formula computes the exact row count at a given scale factor. Known
// TPC-H/SSB counts are closed-form (e.g. customer = 150_000*scale);
// dimension tables often scale logarithmically.
type Formula func(scale float64) int64

// Linear returns a Formula that scales base linearly, rounding down —
// the common case for TPC-H/TPC-DS/SSB fact and most dimension tables.
func Linear(base int64) Formula {
	return func(scale float64) int64 {
		return int64(float64(base) * scale)
	}
}

// Fixed returns a Formula ignoring scale — used by small reference
// tables (nation, region, reason, income_band, ...).
func Fixed(n int64) Formula {
	return func(scale float64) int64 { return n }
}

// Unknown marks a table whose row count can only be discovered by
// walking its generator (SSB lineorder; TPC-DS sales/returns line-item
// counts).
var Unknown Formula = nil

// Resolve returns (count, isKnown) for a formula at the given scale; a
// nil formula always reports isKnown=false.
func Resolve(f Formula, scale float64) (int64, bool) {
	if f == nil {
		return 0, false
	}
	return f(scale), true
}
