// Package genopts defines the request parameters accepted by every tpcgen
// suite and row generator: a single generation request's scale, row
// range, chunking, and column projection, independent of any one
// benchmark run's broader configuration.
package genopts

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/stormdb-contrib/tpcgen/internal/errs"
)

// SeedMode selects whether column streams start from their table's base
// seed (PerTable) or are advanced past the draws every preceding table in
// benchmark order would have made (AllTables).
type SeedMode string

const (
	PerTable  SeedMode = "per_table"
	AllTables SeedMode = "all_tables"
)

// SuiteID identifies one of the three supported benchmark suites.
type SuiteID string

const (
	TPCH  SuiteID = "tpch"
	TPCDS SuiteID = "tpcds"
	SSB   SuiteID = "ssb"
)

// NormalizeSuiteID canonicalizes a user-supplied suite name.
func NormalizeSuiteID(s string) (SuiteID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tpch", "tpc-h", "tpc_h":
		return TPCH, nil
	case "tpcds", "tpc-ds", "tpc_ds":
		return TPCDS, nil
	case "ssb":
		return SSB, nil
	default:
		return "", errs.Invalidf("unknown benchmark suite %q", s)
	}
}

// NormalizeTableName applies a case-insensitive, separator-tolerant
// lookup rule: "lineitem" / "line-item" / "Line_Item" all
// match the same table.
func NormalizeTableName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// UnknownRowCount is the row_count sentinel meaning "until end of table".
const UnknownRowCount int64 = -1

// Options is the immutable input to a generator construction. Validation
// runs through go-playground/validator
// struct tags rather than a hand-rolled `if` chain, since that stops
// scaling cleanly once an options struct grows past a handful of fields.
type Options struct {
	ScaleFactor     float64  `validate:"gt=0"`
	StartRow        int64    `validate:"gte=0"`
	RowCount        int64    // UnknownRowCount (-1) or >= 0, checked separately
	ChunkSize       int64    `validate:"gt=0"`
	ColumnNames     []string // empty = all columns, schema order
	SeedMode        SeedMode `validate:"required,oneof=per_table all_tables"`
	DistributionDir string   // empty = embedded defaults
}

// Default returns Options with conventional defaults: scale 1, chunk size
// 10000, generate the whole table, AllTables seed mode (matching "generate
// everything" dbgen/dsdgen behavior).
func Default() Options {
	return Options{
		ScaleFactor: 1,
		StartRow:    0,
		RowCount:    UnknownRowCount,
		ChunkSize:   10000,
		SeedMode:    AllTables,
	}
}

var validate = validator.New()

// Validate checks field-level invariants and the cross-field column-name
// uniqueness rule (duplicate column names are invalid).
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errs.Invalidf("invalid generator options: %v", err)
	}
	if o.RowCount < UnknownRowCount {
		return errs.Invalidf("row_count must be >= -1, got %d", o.RowCount)
	}
	seen := make(map[string]struct{}, len(o.ColumnNames))
	for _, c := range o.ColumnNames {
		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			return errs.Invalidf("duplicate column name %q", c)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// HasBoundedRowCount reports whether row_count sets an end row: false
// for the sentinel, where generation runs "until the underlying
// generator signals no more rows"; true when generation stops at
// start_row+row_count, exclusive.
func (o Options) HasBoundedRowCount() bool {
	return o.RowCount != UnknownRowCount
}
