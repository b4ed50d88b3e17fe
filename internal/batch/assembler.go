package batch

import "github.com/stormdb-contrib/tpcgen/internal/errs"

// RowGenerator is the common contract every table-specific generator
// implements: init happens at construction time, SkipTo
// fast-forwards to an arbitrary row, GenerateRow produces one 1-based
// row. TotalRows reports a known row count, or ok=false when it is
// derived only by walking the stream.
type RowGenerator interface {
	Schema() Schema
	SkipTo(row int64) error
	GenerateRow(rowNumber int64) (Row, error)
	TotalRows() (count int64, ok bool)
}

// Assembler owns a RowGenerator, an optional column projection, and the
// chunking/row-range state needed to turn a row stream into batches.
type Assembler struct {
	gen          RowGenerator
	fullSchema   Schema
	projectedIdx []int
	schema       Schema

	chunkSize     int64
	currentRow    int64 // 0-based, next row to produce
	remainingRows int64 // -1 means "unbounded: stop when generator is exhausted"
	exhausted     bool
}

// NewAssembler builds an assembler over gen starting at startRow for
// rowCount rows (genopts.UnknownRowCount sentinel for "to end"),
// honoring an optional column projection.
func NewAssembler(gen RowGenerator, startRow, rowCount int64, chunkSize int64, columnNames []string) (*Assembler, error) {
	if chunkSize <= 0 {
		return nil, errs.Invalidf("chunk_size must be positive, got %d", chunkSize)
	}
	if startRow < 0 {
		return nil, errs.Invalidf("start_row must be >= 0, got %d", startRow)
	}
	schema := gen.Schema()
	idx, err := schema.Project(columnNames)
	if err != nil {
		return nil, err
	}
	if err := gen.SkipTo(startRow); err != nil {
		return nil, err
	}

	remaining := rowCount
	if total, ok := gen.TotalRows(); ok {
		avail := total - startRow
		if avail < 0 {
			avail = 0
		}
		if remaining < 0 || remaining > avail {
			remaining = avail
		}
	}

	return &Assembler{
		gen:           gen,
		fullSchema:    schema,
		projectedIdx:  idx,
		schema:        schema.Projected(idx),
		chunkSize:     chunkSize,
		currentRow:    startRow,
		remainingRows: remaining,
	}, nil
}

// Schema returns the (possibly projected) schema this assembler emits.
func (a *Assembler) Schema() Schema { return a.schema }

// NextBatch produces the next chunk of rows, projecting columns and
// stopping at the configured row_count along the way. A nil, nil return
// means end-of-stream.
func (a *Assembler) NextBatch() (*Batch, error) {
	if a.exhausted {
		return nil, nil
	}
	if a.remainingRows == 0 {
		a.exhausted = true
		return nil, nil
	}

	batchRows := a.chunkSize
	if a.remainingRows > 0 && a.remainingRows < batchRows {
		batchRows = a.remainingRows
	}

	builders := make([]*columnBuilder, len(a.schema.Fields))
	for i, f := range a.schema.Fields {
		builders[i] = newColumnBuilder(f, int(batchRows))
	}

	var produced int64
	for produced < batchRows {
		row, err := a.gen.GenerateRow(a.currentRow + 1)
		if err != nil {
			return nil, err
		}
		if row.Values == nil {
			// Generator signaled exhaustion mid-range (e.g. lineitem
			// ran out of orders); stop this batch early.
			break
		}
		for bi, fi := range a.projectedIdx {
			builders[bi].append(row.Values[fi], row.Null[fi])
		}
		a.currentRow++
		produced++
	}

	if produced == 0 {
		a.exhausted = true
		return nil, nil
	}

	cols := make([]Column, len(builders))
	for i, b := range builders {
		cols[i] = b.finish()
	}

	if a.remainingRows > 0 {
		a.remainingRows -= produced
	}
	if produced < batchRows {
		// Generator ran dry before filling the requested chunk.
		a.exhausted = true
	}

	return &Batch{Schema: a.schema, Rows: int(produced), Cols: cols}, nil
}
