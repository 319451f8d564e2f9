package dict

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutationIsBijection(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 64, 1000} {
		p := NewPermutation(size, 99)
		assert.Equal(t, size-1, p.Len())

		offsets := p.Offsets()
		sort.Ints(offsets)
		for i, off := range offsets {
			assert.Equal(t, i+1, off, "size %d", size)
		}
	}
}

func TestPermutationZeroSize(t *testing.T) {
	p := NewPermutation(0, 1)
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Offsets())
}

func TestPermutationIsDeterministicPerSeed(t *testing.T) {
	a := NewPermutation(50, 1234)
	b := NewPermutation(50, 1234)
	c := NewPermutation(50, 4321)
	assert.Equal(t, a.Offsets(), b.Offsets())
	assert.NotEqual(t, a.Offsets(), c.Offsets())
	assert.Equal(t, int64(1234), a.Seed())
}

func TestPermutationOffsetsIsCopy(t *testing.T) {
	p := NewPermutation(5, 3)
	offsets := p.Offsets()
	first := p.At(0)
	offsets[0] = 100
	assert.Equal(t, first, p.At(0))
}

func TestPermutationIsRoughlyUniform(t *testing.T) {
	// 3! orderings of {1,2,3}.
	const draws = 6000
	counts := make(map[string]int)
	for seed := int64(0); seed < draws; seed++ {
		counts[fmt.Sprint(NewPermutation(4, seed).Offsets())]++
	}

	assert.Len(t, counts, 6)
	for perm, n := range counts {
		assert.InDelta(t, draws/6, n, 200, "ordering %s", perm)
	}
}
