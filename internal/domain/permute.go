package domain

import "github.com/stormdb-contrib/tpcgen/internal/rng"

// Permutation is a Fisher-Yates shuffle of [0, n), produced once per
// generator from a dedicated stream and reused for the generator's
// lifetime. Sales generators cycle a ticket-item base
// index through it to pick item identifiers for each line.
type Permutation struct {
	values []int
}

// NewPermutation draws a permutation of size n using s, consuming
// exactly n-1 draws (index 0 never needs a swap partner draw).
func NewPermutation(s *rng.Stream, n int) *Permutation {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.NextUniform(0, int64(i))
		values[i], values[j] = values[j], values[i]
	}
	return &Permutation{values: values}
}

// At returns the permuted value at index i mod len(values), matching the
// reference's "ticket_item_base mod item_count" indexing.
func (p *Permutation) At(i int) int {
	return p.values[((i%len(p.values))+len(p.values))%len(p.values)]
}

// Len returns the permutation size.
func (p *Permutation) Len() int { return len(p.values) }
