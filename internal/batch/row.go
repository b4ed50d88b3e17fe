package batch

// Row is the generic carrier between a table-specific row generator and
// the Batch Assembler: Values and Null are parallel to the table's full
// (unprojected) Schema. Table packages build one of these per generated
// row from their own typed row structs.
type Row struct {
	Values []interface{}
	Null   []bool
}

// NewRow allocates a Row sized for a schema with n fields, all non-null.
func NewRow(n int) Row {
	return Row{Values: make([]interface{}, n), Null: make([]bool, n)}
}

// Set assigns a non-null value at field index i.
func (r Row) Set(i int, v interface{}) {
	r.Values[i] = v
	r.Null[i] = false
}

// SetNull marks field index i as NULL.
func (r Row) SetNull(i int) {
	r.Values[i] = nil
	r.Null[i] = true
}

// ApplyBitmap applies a TPC-DS-style 64-bit null bitmap starting at
// firstCol: bit i marks column (firstCol+i) as NULL, except any column
// whose bit is set in notNullBitmap, which is always forced non-null.
func (r Row) ApplyBitmap(firstCol int, nullBitmap, notNullBitmap uint64) {
	for i := firstCol; i < len(r.Values); i++ {
		bit := uint(i - firstCol)
		if bit >= 64 {
			break
		}
		isNull := nullBitmap&(1<<bit) != 0
		forced := notNullBitmap&(1<<bit) != 0
		if isNull && !forced {
			r.SetNull(i)
		}
	}
}
