package model

import "github.com/google/uuid"

// Piece represents one rigid polycube piece of a puzzle.
type Piece struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"` // one-character identifier shown in rendered grids
	Color string `json:"color"` // display color name from the puzzle file, free text

	// Shape is the base orientation as given in the puzzle definition.
	Shape Orientation `json:"-"`

	// Placements is every unique orientation at every in-bounds
	// translation, filled in during puzzle assembly.
	Placements []Bitset `json:"-"`
}

// NewPiece creates a piece with a fresh ID and no placements.
func NewPiece(name, label, color string, shape Orientation) Piece {
	return Piece{
		ID:    uuid.New().String()[:8],
		Name:  name,
		Label: label,
		Color: color,
		Shape: shape,
	}
}

// Size returns the number of cells in the piece's base shape.
func (p Piece) Size() int {
	return len(p.Shape.Cells)
}
