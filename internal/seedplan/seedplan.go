// Package seedplan holds the per-benchmark static seed tables: for every
// column stream, a base-seed constant and its declared
// seeds-per-row, plus the table ordering used to advance seeds so that
// generating one table standalone in AllTables mode reproduces the
// "generate everything" baseline.
package seedplan

import (
	"math"

	"github.com/stormdb-contrib/tpcgen/internal/errs"
	"github.com/stormdb-contrib/tpcgen/internal/rng"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

// SeedBase is the benchmark-specific constant folded into every column's
// initial seed: initial_seed = SeedBase + (INT32_MAX/MAX_COLUMNS)*columnID.
type SeedBase int64

const (
	// TPCHSeedBase is shared by TPC-H and SSB (SSB is derived from TPC-H's
	// generation kit in the reference implementation).
	TPCHSeedBase SeedBase = 1
	// TPCDSSeedBase is the independent constant used by TPC-DS's dsdgen.
	TPCDSSeedBase SeedBase = 19620718
)

const maxColumns = 2048

// ColumnSpec statically declares one column stream: its identifier
// (unique within a benchmark), declared seeds-per-row, and a short name
// used for lookups and logging.
type ColumnSpec struct {
	Name        string
	ColumnID    int
	SeedsPerRow int
}

// StreamSet is a named collection of streams owned by one row generator
// instance, built from a table's []ColumnSpec.
type StreamSet struct {
	base    SeedBase
	streams map[string]*rng.Stream
	order   []string
}

// NewStreamSet constructs fresh streams for every spec, all starting from
// their table's base seed (PerTable semantics); ApplySeedMode layers
// AllTables semantics on top.
func NewStreamSet(base SeedBase, specs []ColumnSpec) *StreamSet {
	ss := &StreamSet{
		base:    base,
		streams: make(map[string]*rng.Stream, len(specs)),
		order:   make([]string, 0, len(specs)),
	}
	for _, spec := range specs {
		initial := int64(base) + (math.MaxInt32/maxColumns)*int64(spec.ColumnID)
		ss.streams[spec.Name] = rng.NewStream(spec.ColumnID, initial, spec.SeedsPerRow)
		ss.order = append(ss.order, spec.Name)
	}
	return ss
}

// Stream returns the named stream, panicking on an unknown name since
// that indicates a generator/spec mismatch caught in tests, not user
// input.
func (ss *StreamSet) Stream(name string) *rng.Stream {
	s, ok := ss.streams[name]
	if !ok {
		panic("seedplan: unknown stream " + name)
	}
	return s
}

// SkipRows advances every owned stream by n rows, used by a row
// generator's skip_to(n) implementation.
func (ss *StreamSet) SkipRows(n int64) {
	for _, s := range ss.streams {
		s.SkipRows(n)
	}
}

// Reset restores every owned stream to its initial seed.
func (ss *StreamSet) Reset() {
	for _, s := range ss.streams {
		s.Reset()
	}
}

// ConsumeRemaining enforces the per-row draw-count invariant on every
// owned stream; row generators call this once at the end of generate_row.
func (ss *StreamSet) ConsumeRemaining() error {
	for _, name := range ss.order {
		if err := ss.streams[name].ConsumeRemainingForRow(); err != nil {
			return errs.Internalf("stream %q: %v", name, err)
		}
	}
	return nil
}

// SkipStream advances a single named stream by n rows; used by
// ApplySeedMode to model a relationship-owning stream being burned by
// a preceding table's row count.
func (ss *StreamSet) SkipStream(name string, n int64) {
	ss.Stream(name).SkipRows(n)
}

// RelationshipAdvance describes one cross-table seed dependency: when
// generating ownerStream's table in AllTables mode, the stream is
// advanced by the resolved row count of precedingTable at the request's
// scale factor, modeling the shared relationship the preceding table
// would have established (e.g. TPC-H lineitem's supplier-per-part
// relation depends on how many suppliers would already exist).
type RelationshipAdvance struct {
	OwnerStream     string
	PrecedingTable  string
	RowCountAtScale func(scale float64) int64
}

// ApplySeedMode advances ss per relationships when mode is AllTables; it
// is a no-op under PerTable mode, matching dbgen's `-T <table>` behavior
// where a single table starts from its own base seed untouched.
func ApplySeedMode(ss *StreamSet, mode genopts.SeedMode, scale float64, relationships []RelationshipAdvance) {
	if mode != genopts.AllTables {
		return
	}
	for _, rel := range relationships {
		n := rel.RowCountAtScale(scale)
		if n > 0 {
			ss.SkipStream(rel.OwnerStream, n)
		}
	}
}
