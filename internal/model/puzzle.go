package model

import (
	"fmt"
	"math"
)

// VolumeError reports a piece set whose total cell count cannot fill a
// cubic volume.
type VolumeError struct {
	Cells int // total cells across all base shapes
	Side  int // nearest cube side length
}

func (e *VolumeError) Error() string {
	return fmt.Sprintf("piece cells total %d does not fill a cube (nearest is %d^3 = %d)",
		e.Cells, e.Side, e.Side*e.Side*e.Side)
}

// Puzzle holds the target volume, the pieces with their precomputed
// placement lists, and the all-cells-set mask.
type Puzzle struct {
	Name   string
	Dim    Coord
	Pieces []Piece
	Full   Bitset
}

// NewPuzzle assembles a puzzle from base piece shapes. The cubic volume
// side is inferred from the total cell count, which must be a perfect
// cube; otherwise a *VolumeError is returned. Each piece's placement
// list and the full-volume mask are precomputed here.
func NewPuzzle(name string, pieces []Piece) (*Puzzle, error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("puzzle %q has no pieces", name)
	}

	total := 0
	for _, p := range pieces {
		total += p.Size()
	}
	side := int(math.Round(math.Cbrt(float64(total))))
	if side*side*side != total {
		return nil, &VolumeError{Cells: total, Side: side}
	}

	puz := &Puzzle{
		Name:   name,
		Dim:    Coord{X: side, Y: side, Z: side},
		Pieces: pieces,
	}

	for i := range puz.Pieces {
		puz.Pieces[i].Placements = PlacementsFor(puz.Pieces[i].Shape, puz.Dim)
	}

	puz.Full = NewBitset(puz.CellCount())
	for i := 0; i < puz.CellCount(); i++ {
		puz.Full.Set(i)
	}
	return puz, nil
}

// CellCount returns the number of cells in the volume.
func (p *Puzzle) CellCount() int {
	return p.Dim.X * p.Dim.Y * p.Dim.Z
}

// Index linearizes a cell coordinate to its bit index.
func (p *Puzzle) Index(c Coord) int {
	return c.Z*p.Dim.Y*p.Dim.X + c.Y*p.Dim.X + c.X
}

// PieceAt returns the index of the committed piece covering the given
// cell, or -1 if the cell is empty.
func (p *Puzzle) PieceAt(arr *Arrangement, cell int) int {
	for _, placed := range arr.Placed {
		if placed.Cells.Get(cell) {
			return placed.Piece
		}
	}
	return -1
}

// PlacementsFor expands one base shape into every placement inside the
// volume: the shape's unique rotations, each at every translation whose
// bounding box stays in bounds. Placements are not deduplicated across
// orientation/offset pairs, matching the enumeration order of the
// orientations.
func PlacementsFor(shape Orientation, dim Coord) []Bitset {
	var out []Bitset
	for _, ori := range shape.Rotations() {
		bounds := ori.Bounds()
		for xOff := 0; xOff < dim.X-bounds.X; xOff++ {
			for yOff := 0; yOff < dim.Y-bounds.Y; yOff++ {
				for zOff := 0; zOff < dim.Z-bounds.Z; zOff++ {
					out = append(out, maskFor(ori, Coord{X: xOff, Y: yOff, Z: zOff}, dim))
				}
			}
		}
	}
	return out
}

// maskFor builds the occupancy mask of an orientation translated by off.
func maskFor(ori Orientation, off Coord, dim Coord) Bitset {
	mask := NewBitset(dim.X * dim.Y * dim.Z)
	for _, c := range ori.Cells {
		t := c.Add(off)
		mask.Set(t.Z*dim.Y*dim.X + t.Y*dim.X + t.X)
	}
	return mask
}
