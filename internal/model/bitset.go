package model

import (
	"math/bits"
	"strconv"
	"strings"
)

// Bitset is a fixed-width occupancy bit vector over volume cells.
// Bit i set means cell i is occupied, with cells linearized as
// z*Y*X + y*X + x. The width is fixed at construction to the puzzle's
// cell count, so volumes larger than one machine word are supported.
//
// All binary operations assume both operands were created for the same
// volume and therefore have the same width.
type Bitset struct {
	words []uint64
}

// NewBitset returns an empty bitset able to hold the given number of cells.
func NewBitset(cells int) Bitset {
	return Bitset{words: make([]uint64, (cells+63)/64)}
}

// Clone returns an independent copy.
func (b Bitset) Clone() Bitset {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Bitset{words: words}
}

// Get reports whether bit i is set. Indices past the width read as clear.
func (b Bitset) Get(i int) bool {
	w := i / 64
	if w >= len(b.words) {
		return false
	}
	return b.words[w]&(1<<(i%64)) != 0
}

// Set sets bit i.
func (b Bitset) Set(i int) {
	b.words[i/64] |= 1 << (i % 64)
}

// Union returns the bitwise or of both sets.
func (b Bitset) Union(o Bitset) Bitset {
	out := b.Clone()
	out.UnionWith(o)
	return out
}

// UnionWith ors the other set into this one in place.
func (b Bitset) UnionWith(o Bitset) {
	for i := range b.words {
		b.words[i] |= o.words[i]
	}
}

// Intersection returns the bitwise and of both sets.
func (b Bitset) Intersection(o Bitset) Bitset {
	out := b.Clone()
	for i := range out.words {
		out.words[i] &= o.words[i]
	}
	return out
}

// Xor returns the symmetric difference of both sets.
func (b Bitset) Xor(o Bitset) Bitset {
	out := b.Clone()
	out.XorWith(o)
	return out
}

// XorWith toggles the other set's bits in place. Used by the search to
// remove a committed placement, whose bits are a subset of the occupancy.
func (b Bitset) XorWith(o Bitset) {
	for i := range b.words {
		b.words[i] ^= o.words[i]
	}
}

// Intersects reports whether both sets share any bit.
func (b Bitset) Intersects(o Bitset) bool {
	for i := range b.words {
		if b.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// Equal reports whether both sets are identical.
func (b Bitset) Equal(o Bitset) bool {
	if len(b.words) != len(o.words) {
		return false
	}
	for i := range b.words {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Less imposes a total order on same-width bitsets, comparing the
// highest differing word. Used to pick canonical representatives.
func (b Bitset) Less(o Bitset) bool {
	for i := len(b.words) - 1; i >= 0; i-- {
		if b.words[i] != o.words[i] {
			return b.words[i] < o.words[i]
		}
	}
	return false
}

// Count returns the number of set bits.
func (b Bitset) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// NextClear returns the index of the first clear bit at or after from,
// or -1 if every bit up to the width is set.
func (b Bitset) NextClear(from int) int {
	for i := from; i < len(b.words)*64; i++ {
		if !b.Get(i) {
			return i
		}
	}
	return -1
}

// Key returns a compact string form suitable as a map key.
func (b Bitset) Key() string {
	var sb strings.Builder
	for _, w := range b.words {
		sb.WriteString(strconv.FormatUint(w, 16))
		sb.WriteByte(':')
	}
	return sb.String()
}

// Indices returns the sorted cell indices of all set bits.
func (b Bitset) Indices() []int {
	var out []int
	for i, w := range b.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			out = append(out, i*64+bit)
			w &= w - 1
		}
	}
	return out
}
