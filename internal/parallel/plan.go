// Package parallel implements the Parallel Range Planner and the worker
// runner that executes the ranges it produces.
package parallel

import "github.com/stormdb-contrib/tpcgen/pkg/genopts"

// Range is one worker's contiguous slice of a table's row space, in the
// same (start_row, row_count) shape as genopts.Options.
type Range struct {
	StartRow int64
	RowCount int64
}

// PlanRanges splits [startRow, startRow+span) into workers contiguous
// ranges, where span is row_count clipped to the generator's real row
// count when known. Worker i gets base*i + min(i, remainder) as its start
// offset and base + (i < remainder) rows. When workers <= 1 or
// totalRowsKnown is false, the whole
// (startRow, rowCount) request is returned as a single, unsplit range:
// a generator with no known total cannot be divided without walking it
// first, which would defeat the point of splitting it.
func PlanRanges(workers int, startRow, rowCount int64, totalRows int64, totalRowsKnown bool) []Range {
	if workers <= 1 || !totalRowsKnown {
		return []Range{{StartRow: startRow, RowCount: rowCount}}
	}

	avail := totalRows - startRow
	if avail < 0 {
		avail = 0
	}
	span := rowCount
	if span < 0 || span > avail {
		span = avail
	}
	if span == 0 {
		return []Range{{StartRow: startRow, RowCount: 0}}
	}
	if int64(workers) > span {
		workers = int(span)
	}
	if workers < 1 {
		workers = 1
	}

	base := span / int64(workers)
	remainder := span % int64(workers)

	ranges := make([]Range, workers)
	offset := startRow
	for i := 0; i < workers; i++ {
		count := base
		if int64(i) < remainder {
			count++
		}
		ranges[i] = Range{StartRow: offset, RowCount: count}
		offset += count
	}
	return ranges
}

// PlanRangesForOptions is the genopts.Options-shaped convenience wrapper
// around PlanRanges, reading start_row/row_count straight off opts.
func PlanRangesForOptions(workers int, opts genopts.Options, totalRows int64, totalRowsKnown bool) []Range {
	return PlanRanges(workers, opts.StartRow, opts.RowCount, totalRows, totalRowsKnown)
}

// Apply returns a copy of opts with start_row/row_count overridden by r,
// ready to hand to a suite's MakeIterator for one worker's share.
func (r Range) Apply(opts genopts.Options) genopts.Options {
	opts.StartRow = r.StartRow
	opts.RowCount = r.RowCount
	return opts
}
