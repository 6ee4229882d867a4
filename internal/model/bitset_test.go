package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsetSetGet(t *testing.T) {
	b := NewBitset(27)
	assert.False(t, b.Get(0), "new bitset should be empty")

	b.Set(0)
	b.Set(13)
	b.Set(26)
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(13))
	assert.True(t, b.Get(26))
	assert.False(t, b.Get(1))
	assert.Equal(t, 3, b.Count())
}

func TestBitsetOutOfRangeReadsClear(t *testing.T) {
	b := NewBitset(8)
	assert.False(t, b.Get(64), "indices past the width should read as clear")
	assert.False(t, b.Get(1000))
}

func TestBitsetMultiWord(t *testing.T) {
	// A 5x5x5 volume needs 125 bits, spanning two words.
	b := NewBitset(125)
	b.Set(63)
	b.Set(64)
	b.Set(124)

	assert.True(t, b.Get(63))
	assert.True(t, b.Get(64))
	assert.True(t, b.Get(124))
	assert.Equal(t, 3, b.Count())
	assert.Equal(t, []int{63, 64, 124}, b.Indices())

	o := NewBitset(125)
	o.Set(64)
	assert.True(t, b.Intersects(o), "overlap in the high word should be detected")

	b.XorWith(o)
	assert.False(t, b.Get(64))
	assert.Equal(t, 2, b.Count())
}

func TestBitsetUnionXorRoundTrip(t *testing.T) {
	occ := NewBitset(27)
	occ.Set(3)
	occ.Set(7)
	before := occ.Clone()

	placement := NewBitset(27)
	placement.Set(10)
	placement.Set(11)

	occ.UnionWith(placement)
	assert.Equal(t, 4, occ.Count())

	// Committed placements are disjoint from the occupancy, so xor
	// must restore the exact prior state.
	occ.XorWith(placement)
	require.True(t, occ.Equal(before), "xor undo should restore occupancy bit for bit")
}

func TestBitsetIntersects(t *testing.T) {
	a := NewBitset(27)
	a.Set(5)
	b := NewBitset(27)
	b.Set(6)

	assert.False(t, a.Intersects(b))
	b.Set(5)
	assert.True(t, a.Intersects(b))

	both := a.Intersection(b)
	assert.Equal(t, []int{5}, both.Indices())
}

func TestBitsetLess(t *testing.T) {
	a := NewBitset(125)
	a.Set(3)
	b := NewBitset(125)
	b.Set(70)

	assert.True(t, a.Less(b), "high word should dominate the ordering")
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a), "equal sets are not less")
}

func TestBitsetNextClear(t *testing.T) {
	b := NewBitset(8)
	b.Set(0)
	b.Set(1)
	b.Set(3)

	assert.Equal(t, 2, b.NextClear(0))
	assert.Equal(t, 2, b.NextClear(2))
	assert.Equal(t, 4, b.NextClear(3))

	full := NewBitset(8)
	for i := 0; i < 64; i++ {
		full.Set(i)
	}
	assert.Equal(t, -1, full.NextClear(0), "full bitset has no clear bit")
}

func TestBitsetKeyDistinguishes(t *testing.T) {
	a := NewBitset(27)
	a.Set(1)
	b := NewBitset(27)
	b.Set(2)
	c := NewBitset(27)
	c.Set(1)

	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), c.Key())
}

func TestBitsetCloneIsIndependent(t *testing.T) {
	a := NewBitset(27)
	a.Set(4)
	b := a.Clone()
	b.Set(5)

	assert.False(t, a.Get(5), "mutating a clone should not affect the original")
	assert.True(t, b.Get(4))
}
