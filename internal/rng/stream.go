// Package rng implements the Lehmer multiplicative-congruential random
// streams that back every tpcgen row generator. One Stream exists per
// "column seed"; it is never shared across goroutines.
package rng

import "github.com/stormdb-contrib/tpcgen/internal/errs"

const (
	modulus    = 2147483647 // 2^31 - 1, a Mersenne prime
	multiplier = 16807      // 7^5, the dbgen/dsdgen Lehmer multiplier
	schrageQ   = 127773     // modulus / multiplier
	schrageR   = 2836       // modulus % multiplier
)

// Stream is one Lehmer sequence dedicated to a single column seed. It
// tracks how many draws the current row has consumed so the "consume
// remaining seeds" invariant can be enforced.
type Stream struct {
	columnID     int
	initialSeed  int64
	seed         int64
	seedsPerRow  int
	seedsUsed    int
}

// NewStream builds a stream for columnID with the given base seed and
// declared seeds-per-row. base is the benchmark-specific SEED_BASE plus
// the column's slot offset, computed by the seed plan.
func NewStream(columnID int, baseSeed int64, seedsPerRow int) *Stream {
	if seedsPerRow <= 0 {
		panic("rng: seedsPerRow must be positive")
	}
	return &Stream{
		columnID:    columnID,
		initialSeed: baseSeed,
		seed:        baseSeed,
		seedsPerRow: seedsPerRow,
	}
}

// ColumnID returns the column-seed identifier this stream was built for.
func (s *Stream) ColumnID() int { return s.columnID }

// SeedsPerRow returns the declared draws-per-row for this stream.
func (s *Stream) SeedsPerRow() int { return s.seedsPerRow }

// SeedsUsed returns how many draws the current row has consumed so far.
func (s *Stream) SeedsUsed() int { return s.seedsUsed }

// schrage performs one Lehmer step using the Schrage split so the
// multiply never overflows a signed 64-bit intermediate even though the
// reference kit is specified against 32-bit arithmetic.
func schrage(seed int64) int64 {
	hi := seed / schrageQ
	lo := seed % schrageQ
	t := multiplier*lo - schrageR*hi
	if t < 0 {
		t += modulus
	}
	return t
}

// NextRandom advances the stream by one Lehmer step and returns the new
// seed. It increments seeds_used.
func (s *Stream) NextRandom() int64 {
	s.seed = schrage(s.seed)
	s.seedsUsed++
	return s.seed
}

// NextUniform draws min..max inclusive. min==max returns min without
// consuming extra entropy beyond the single draw; negative ranges are
// allowed.
func (s *Stream) NextUniform(min, max int64) int64 {
	if min == max {
		s.NextRandom()
		return min
	}
	r := s.NextRandom()
	span := max - min + 1
	m := r % span
	if m < 0 {
		m += span
	}
	return min + m
}

// NextDouble01 draws a float64 in [0, 1).
func (s *Stream) NextDouble01() float64 {
	return float64(s.NextRandom()) / float64(modulus)
}

// powMod computes base^exp mod modulus via fast exponentiation in
// O(log exp), so skipping by n=10^9 rows completes in microseconds.
func powMod(base, exp int64) int64 {
	result := int64(1)
	base %= modulus
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base)
		}
		base = mulMod(base, base)
		exp >>= 1
	}
	return result
}

// mulMod multiplies two values mod the 2^31-1 Mersenne prime by binary
// double-and-add, so no intermediate exceeds 2*modulus.
func mulMod(a, b int64) int64 {
	// b==multiplier is one Lehmer step, done by the one-step schrage.
	if b == multiplier {
		return schrage(a)
	}
	var acc int64
	base := a
	e := b
	for e > 0 {
		if e&1 == 1 {
			acc = addMod(acc, base)
		}
		base = addMod(base, base)
		e >>= 1
	}
	return acc
}

func addMod(a, b int64) int64 {
	s := a + b
	if s >= modulus {
		s -= modulus
	}
	return s
}

// SkipRows advances the stream by n*seeds_per_row draws in O(log n) by
// raising the multiplier to that power in Z/(2^31-1) instead of
// replaying every intermediate draw. Resets seeds_used to 0.
func (s *Stream) SkipRows(n int64) {
	if n < 0 {
		panic("rng: SkipRows requires n >= 0")
	}
	k := n * int64(s.seedsPerRow)
	m := powMod(multiplier, k)
	s.seed = mulMod(s.initialSeed, m)
	s.seedsUsed = 0
}

// ConsumeRemainingForRow draws until seeds_used == seeds_per_row, then
// resets the counter. This is the enforcement point for the "every
// column consumes exactly seeds_per_row draws per row" invariant.
func (s *Stream) ConsumeRemainingForRow() error {
	if s.seedsUsed > s.seedsPerRow {
		return errs.Internalf("column %d used %d seeds, declared seeds_per_row is %d",
			s.columnID, s.seedsUsed, s.seedsPerRow)
	}
	for s.seedsUsed < s.seedsPerRow {
		s.NextRandom()
	}
	s.seedsUsed = 0
	return nil
}

// Reset restores the initial seed and zeroes the draw counter.
func (s *Stream) Reset() {
	s.seed = s.initialSeed
	s.seedsUsed = 0
}
