package batch

// columnBuilder accumulates one column's values and validity bitmap
// across the rows of a batch, an Arrow-like typed column builder.
type columnBuilder struct {
	field  Field
	values []interface{}
	valid  []bool
}

func newColumnBuilder(f Field, capacity int) *columnBuilder {
	return &columnBuilder{
		field:  f,
		values: make([]interface{}, 0, capacity),
		valid:  make([]bool, 0, capacity),
	}
}

func (b *columnBuilder) append(v interface{}, isNull bool) {
	if isNull {
		b.values = append(b.values, nil)
		b.valid = append(b.valid, false)
		return
	}
	b.values = append(b.values, v)
	b.valid = append(b.valid, true)
}

func (b *columnBuilder) finish() Column {
	return Column{Field: b.field, Values: b.values, Valid: b.valid}
}

// Column is one materialized, typed column of a Batch.
type Column struct {
	Field  Field
	Values []interface{}
	Valid  []bool
}

// Len returns the number of values in the column (equal to the batch's
// row count).
func (c Column) Len() int { return len(c.Values) }

// Batch is a materialized chunk of <= chunk_size rows.
type Batch struct {
	Schema Schema
	Rows   int
	Cols   []Column
}

// Column returns the named column, or the zero Column if absent.
func (b Batch) Column(name string) Column {
	for _, c := range b.Cols {
		if c.Field.Name == name {
			return c
		}
	}
	return Column{}
}
