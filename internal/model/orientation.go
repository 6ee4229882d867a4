package model

// Orientation is one rotation of a piece shape, normalized so that the
// minimum coordinate on each axis is zero. Two orientations are the
// same shape exactly when their canonical masks match; coordinate
// order is irrelevant because different rotation paths can list the
// same cells in different orders.
type Orientation struct {
	Cells []Coord

	key string // canonical mask key, cached at construction
}

// NewOrientation normalizes the given cells and caches the canonical key.
func NewOrientation(cells []Coord) Orientation {
	normalized := normalize(cells)
	o := Orientation{Cells: normalized}
	o.key = o.canonicalKey()
	return o
}

// normalize subtracts the per-axis minimum so the shape occupies the
// nonnegative octant, touching every axis plane at zero.
func normalize(cells []Coord) []Coord {
	min := cells[0]
	for _, c := range cells[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
	}
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{X: c.X - min.X, Y: c.Y - min.Y, Z: c.Z - min.Z}
	}
	return out
}

// canonicalKey embeds the normalized cells in a cubic reference frame
// and returns the resulting mask key. The frame side is the shape's
// largest extent, which rotation only permutes between axes, so every
// orientation of one piece is keyed in the same frame.
func (o Orientation) canonicalKey() string {
	b := o.Bounds()
	side := b.X
	if b.Y > side {
		side = b.Y
	}
	if b.Z > side {
		side = b.Z
	}
	side++

	mask := NewBitset(side * side * side)
	for _, c := range o.Cells {
		mask.Set(c.Z*side*side + c.Y*side + c.X)
	}
	return mask.Key()
}

// Key returns the cached canonical mask key.
func (o Orientation) Key() string {
	return o.key
}

// Bounds returns the per-axis maximum cell coordinate.
func (o Orientation) Bounds() Coord {
	max := o.Cells[0]
	for _, c := range o.Cells[1:] {
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	return max
}

// rotate applies a coordinate transform to every cell and renormalizes.
func (o Orientation) rotate(fn func(Coord) Coord) Orientation {
	cells := make([]Coord, len(o.Cells))
	for i, c := range o.Cells {
		cells[i] = fn(c)
	}
	return NewOrientation(cells)
}

// RotateX returns the orientation rotated 90 degrees about the x axis.
func (o Orientation) RotateX() Orientation { return o.rotate(Coord.RotateX) }

// RotateY returns the orientation rotated 90 degrees about the y axis.
func (o Orientation) RotateY() Orientation { return o.rotate(Coord.RotateY) }

// RotateZ returns the orientation rotated 90 degrees about the z axis.
func (o Orientation) RotateZ() Orientation { return o.rotate(Coord.RotateZ) }

// Rotations returns every geometrically distinct rotation of the shape.
// The 24-element cube rotation group is enumerated as four rolls about
// the x axis crossed with six face choices (identity, y, y^3, z, z^2,
// z^3); symmetric shapes collapse to fewer than 24 via the canonical
// mask.
func (o Orientation) Rotations() []Orientation {
	seen := make(map[string]bool)
	var out []Orientation

	add := func(r Orientation) {
		if !seen[r.Key()] {
			seen[r.Key()] = true
			out = append(out, r)
		}
	}

	cur := NewOrientation(o.Cells)
	for roll := 0; roll < 4; roll++ {
		add(cur)
		add(cur.RotateY())
		add(cur.RotateY().RotateY().RotateY())
		add(cur.RotateZ())
		add(cur.RotateZ().RotateZ())
		add(cur.RotateZ().RotateZ().RotateZ())
		cur = cur.RotateX()
	}
	return out
}
