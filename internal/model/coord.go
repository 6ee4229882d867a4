package model

import (
	"fmt"
	"strings"
)

// Coord represents an integer 3D coordinate (a unit cube cell).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns the coordinate translated by the given offset.
func (c Coord) Add(off Coord) Coord {
	return Coord{X: c.X + off.X, Y: c.Y + off.Y, Z: c.Z + off.Z}
}

// RotateX rotates 90 degrees about the x axis (right-handed):
// (x, y, z) -> (x, -z, y).
func (c Coord) RotateX() Coord {
	return Coord{X: c.X, Y: -c.Z, Z: c.Y}
}

// RotateY rotates 90 degrees about the y axis:
// (x, y, z) -> (z, y, -x).
func (c Coord) RotateY() Coord {
	return Coord{X: c.Z, Y: c.Y, Z: -c.X}
}

// RotateZ rotates 90 degrees about the z axis:
// (x, y, z) -> (-y, x, z).
func (c Coord) RotateZ() Coord {
	return Coord{X: -c.Y, Y: c.X, Z: c.Z}
}

// ParseShape parses a shape descriptor into a normalized Orientation.
// The descriptor is a dash-separated list of 3-digit codes, each digit
// giving the piece-local x, y, z offset of one cell, e.g. "000-100"
// describes a 2-cell piece along the x axis.
func ParseShape(s string) (Orientation, error) {
	codes := strings.Split(strings.TrimSpace(s), "-")
	cells := make([]Coord, 0, len(codes))
	for _, code := range codes {
		if len(code) != 3 {
			return Orientation{}, fmt.Errorf("shape code %q: want exactly 3 digits", code)
		}
		var digits [3]int
		for i, r := range code {
			if r < '0' || r > '9' {
				return Orientation{}, fmt.Errorf("shape code %q: non-numeric digit %q", code, r)
			}
			digits[i] = int(r - '0')
		}
		cells = append(cells, Coord{X: digits[0], Y: digits[1], Z: digits[2]})
	}
	if len(cells) == 0 {
		return Orientation{}, fmt.Errorf("empty shape descriptor")
	}
	return NewOrientation(cells), nil
}
