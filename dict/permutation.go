package dict

import "math/rand"

// Permutation holds the probe offsets of a table of a given size: a uniformly
// random ordering of 1..size-1. It is drawn once and never changes.
type Permutation struct {
	offsets []int
	seed    int64
}

// NewPermutation draws a permutation of 1..size-1 from a source seeded with seed.
// A size of 1 yields an empty permutation.
func NewPermutation(size int, seed int64) *Permutation {
	n := size - 1
	if n < 0 {
		n = 0
	}
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i + 1
	}

	// Fisher-Yates, uniform over all (size-1)! orderings.
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(n, func(i, j int) {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	})

	return &Permutation{
		offsets: offsets,
		seed:    seed,
	}
}

// Len returns the number of offsets.
func (p *Permutation) Len() int {
	return len(p.offsets)
}

// At returns the i-th offset.
func (p *Permutation) At(i int) int {
	return p.offsets[i]
}

// Seed returns the seed the permutation was drawn from.
func (p *Permutation) Seed() int64 {
	return p.seed
}

// Offsets returns a copy of the offsets.
func (p *Permutation) Offsets() []int {
	out := make([]int, len(p.offsets))
	copy(out, p.offsets)
	return out
}
