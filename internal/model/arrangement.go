package model

// PlacedPiece is one committed placement: a piece index into the
// puzzle's piece list and the cells it occupies.
type PlacedPiece struct {
	Piece int
	Cells Bitset
}

// Solution is the placement list of a completed arrangement. Occupancy
// is derivable as the union of the placements and is not stored.
type Solution []PlacedPiece

// Arrangement is the search's mutable state: current occupancy plus the
// ordered stack of committed placements. The occupancy is always the
// union of the committed placements, and no two committed placements
// share a bit.
type Arrangement struct {
	Occupied Bitset
	Placed   []PlacedPiece
}

// NewArrangement returns an empty arrangement over the given cell count.
func NewArrangement(cells int) *Arrangement {
	return &Arrangement{Occupied: NewBitset(cells)}
}

// Push commits a placement for the given piece.
func (a *Arrangement) Push(piece int, cells Bitset) {
	a.Occupied.UnionWith(cells)
	a.Placed = append(a.Placed, PlacedPiece{Piece: piece, Cells: cells})
}

// Pop removes the most recently committed placement, restoring the
// exact pre-push occupancy. Committed placements are disjoint, so xor
// clears precisely the popped placement's bits.
func (a *Arrangement) Pop() (PlacedPiece, bool) {
	if len(a.Placed) == 0 {
		return PlacedPiece{}, false
	}
	last := a.Placed[len(a.Placed)-1]
	a.Placed = a.Placed[:len(a.Placed)-1]
	a.Occupied.XorWith(last.Cells)
	return last, true
}

// Snapshot returns the placement list as an independent solution.
func (a *Arrangement) Snapshot() Solution {
	return Solution(append([]PlacedPiece(nil), a.Placed...))
}
