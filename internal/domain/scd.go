package domain

import "github.com/stormdb-contrib/tpcgen/internal/rng"

// SCDGroupSize is the maximum number of versions (rows) a single business
// key can have in a TPC-DS type-2 slowly-changing dimension.
const SCDGroupSize = 6

// SCDDateOffsets are the fixed date_id offsets (in the date_dim's integer
// date space) the reference kit uses to derive rec_start_date/rec_end_date
// for an SCD group, minus the per-table offset.
type SCDDateOffsets struct {
	MinDateID   DateID
	HalfDateID  DateID
	ThirdDateID DateID
}

// GroupStartRow returns the earliest 1-based row number sharing the same
// business key as rowNumber: groups are fixed-size runs of SCDGroupSize,
// so this is a simple floor-division back to the group boundary.
func GroupStartRow(rowNumber int64) int64 {
	idx := rowNumber - 1
	groupIdx := idx / SCDGroupSize
	return groupIdx*SCDGroupSize + 1
}

// SetSCDKeys decides, from row_number mod 6, whether this row starts a
// new business key (position 0 within the group) or continues one, and
// derives start/end dates from the fixed offsets minus a per-table
// offset.
func SetSCDKeys(uniqueID uint64, rowNumber int64, offsets SCDDateOffsets, tableOffsetRows int64) (businessKey string, recStart, recEnd DateID, isNewKey bool) {
	pos := (rowNumber - 1) % SCDGroupSize
	isNewKey = pos == 0
	businessKey = BusinessKey(uniqueID)

	adj := func(d DateID) DateID { return d - DateID(tableOffsetRows) }

	switch pos {
	case 0:
		recStart = adj(offsets.MinDateID)
		recEnd = adj(offsets.ThirdDateID) - 1
	case 1, 2:
		recStart = adj(offsets.ThirdDateID)
		recEnd = adj(offsets.HalfDateID) - 1
	case 3, 4:
		recStart = adj(offsets.HalfDateID)
		recEnd = -1 // open: most recent-but-one version
	default:
		recStart = adj(offsets.HalfDateID) + DateID(pos-3)
		recEnd = -1
	}
	if pos == SCDGroupSize-1 {
		recEnd = -1 // last member of a group is always open
	}
	return businessKey, recStart, recEnd, isNewKey
}

// ChangeFlags is the per-row random draw that decides which attributes a
// dimension row inherits from its predecessor in an SCD group.
type ChangeFlags struct {
	bits  int64
	drawn int
}

// NewChangeFlags draws a fresh change-flag word from s.
func NewChangeFlags(s *rng.Stream) *ChangeFlags {
	return &ChangeFlags{bits: s.NextRandom()}
}

// ChangeSCDValue consumes the least-significant undrawn bit of the flag
// word: if set (and this is not the group's first record), *newValue is
// overwritten with oldValue; otherwise *oldValue is committed from
// *newValue.
func (f *ChangeFlags) ChangeSCDValue(newValue, oldValue *string, firstRecord bool) {
	bit := (f.bits >> uint(f.drawn)) & 1
	f.drawn++
	if bit == 1 && !firstRecord {
		*newValue = *oldValue
	} else {
		*oldValue = *newValue
	}
}

// ChangeSCDValueInt is the integer-field variant of ChangeSCDValue.
func (f *ChangeFlags) ChangeSCDValueInt(newValue, oldValue *int64, firstRecord bool) {
	bit := (f.bits >> uint(f.drawn)) & 1
	f.drawn++
	if bit == 1 && !firstRecord {
		*newValue = *oldValue
	} else {
		*oldValue = *newValue
	}
}

// ChangeSCDPointer consumes a flag bit without copying any value: used
// for fields the reference kit never reverts (e.g. a dimension's
// surrogate key itself).
func (f *ChangeFlags) ChangeSCDPointer() bool {
	bit := (f.bits >> uint(f.drawn)) & 1
	f.drawn++
	return bit == 1
}
