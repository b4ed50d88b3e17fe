// Package batch implements the Batch Assembler: it turns
// a stream of generated row structs into fixed-size columnar batches,
// honoring chunk_size, start_row, row_count and a column-name subset.
package batch

import "github.com/stormdb-contrib/tpcgen/internal/errs"

// FieldType enumerates the Arrow-like column types a generator's schema
// can declare.
type FieldType int

const (
	Int32 FieldType = iota
	Int64
	Utf8
	Bool
	Float32
	Decimal
	Date32
)

// Field describes one schema column: name, type, and (for Decimal) its
// declared precision/scale.
type Field struct {
	Name      string
	Type      FieldType
	Precision int
	Scale     int
}

// Schema is a table's fixed, ordered field list.
type Schema struct {
	Fields []Field
}

// IndexOf returns the position of name (case-sensitive, schema names are
// already normalized lowercase/snake_case), or -1.
func (s Schema) IndexOf(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Project resolves an ordered, possibly-empty column-name subset into a
// list of schema indices, preserving the caller's requested order.
// Empty columnNames means "all columns, schema order".
func (s Schema) Project(columnNames []string) ([]int, error) {
	if len(columnNames) == 0 {
		idx := make([]int, len(s.Fields))
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	idx := make([]int, 0, len(columnNames))
	for _, name := range columnNames {
		i := s.IndexOf(name)
		if i < 0 {
			return nil, errs.Invalidf("unknown column %q", name)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// Names returns the schema's field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Projected returns the Schema restricted to the given field indices, in
// that order — the schema exposed by a batch after projection.
func (s Schema) Projected(idx []int) Schema {
	out := Schema{Fields: make([]Field, len(idx))}
	for i, fi := range idx {
		out.Fields[i] = s.Fields[fi]
	}
	return out
}
