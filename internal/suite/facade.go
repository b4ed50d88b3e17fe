// Package suite implements the Benchmark Suite Façade: a
// single entry point that, given a SuiteID and table name, resolves the
// matching RowGenerator constructor and row-count formula without the
// caller needing to import every gen/<suite> package directly.
package suite

import (
	"github.com/stormdb-contrib/tpcgen/internal/batch"
	"github.com/stormdb-contrib/tpcgen/internal/errs"
	"github.com/stormdb-contrib/tpcgen/pkg/genopts"
)

// Constructor builds a fresh RowGenerator for one table at the options'
// scale factor. Every gen/<suite> package exposes one of these per table.
type Constructor func(opts genopts.Options) (batch.RowGenerator, error)

// TableInfo pairs a table's constructor with its declared display name,
// used by table_name/table_count and CLI table listing.
type TableInfo struct {
	Name        string
	NewGenerator Constructor
}

// Suite is an immutable, ordered registry of one benchmark's tables.
// KnownTables optionally lists every real table name the benchmark
// defines, including ones with no generator wired up yet; when a
// caller asks for a name on this list but absent from Tables, Find
// reports NotImplemented rather than InvalidArgument. A suite that
// leaves KnownTables nil is treated as fully implemented: Tables is
// the known-table list.
type Suite struct {
	ID          genopts.SuiteID
	Tables      []TableInfo
	KnownTables []string
}

// TableCount returns the number of tables in the suite.
func (s Suite) TableCount() int { return len(s.Tables) }

// TableName returns the i'th table's name.
func (s Suite) TableName(i int) (string, error) {
	if i < 0 || i >= len(s.Tables) {
		return "", errs.Invalidf("table index %d out of range for suite %s", i, s.ID)
	}
	return s.Tables[i].Name, nil
}

// Find resolves a table by name, tolerating the case/separator variants
// genopts.NormalizeTableName accepts. A name that is a real table of
// this benchmark but has no generator wired up yet reports
// NotImplemented; any other unrecognized name reports InvalidArgument.
func (s Suite) Find(name string) (TableInfo, error) {
	normalized := genopts.NormalizeTableName(name)
	for _, t := range s.Tables {
		if t.Name == normalized {
			return t, nil
		}
	}
	for _, known := range s.KnownTables {
		if known == normalized {
			return TableInfo{}, errs.NotImplementedf("suite %s has no generator wired up for table %q", s.ID, name)
		}
	}
	return TableInfo{}, errs.Invalidf("suite %s has no table %q", s.ID, name)
}

// MakeIterator builds the named table's generator, ready for an
// Assembler to drive.
func (s Suite) MakeIterator(tableName string, opts genopts.Options) (batch.RowGenerator, error) {
	t, err := s.Find(tableName)
	if err != nil {
		return nil, err
	}
	return t.NewGenerator(opts)
}

// ResolveTableRowCount builds a throwaway generator just to ask its
// known row count. It returns ok=false for tables whose count is only
// known by walking the generator, e.g. lineitem/lineorder.
func (s Suite) ResolveTableRowCount(tableName string, opts genopts.Options) (int64, bool, error) {
	gen, err := s.MakeIterator(tableName, opts)
	if err != nil {
		return 0, false, err
	}
	count, ok := gen.TotalRows()
	return count, ok, nil
}

var registry = map[genopts.SuiteID]Suite{}

func register(s Suite) {
	registry[s.ID] = s
}

// MakeBenchmarkSuite resolves a SuiteID to its registered Suite.
func MakeBenchmarkSuite(id genopts.SuiteID) (Suite, error) {
	s, ok := registry[id]
	if !ok {
		return Suite{}, errs.Invalidf("no suite registered for %q", id)
	}
	return s, nil
}
