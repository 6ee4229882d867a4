package engine

import "github.com/bungogood/polycube/internal/model"

// SeedPlacements returns the index of the most-constrained piece (the
// one with the fewest placements) and its placements deduplicated
// under the volume's 24-rotation symmetry group. Fixing the seed piece
// to these representatives prevents the search from revisiting
// solutions that are rotations of each other. Reflections are not
// included: mirroring a chiral piece set does not map solutions onto
// the same pieces.
func SeedPlacements(puz *model.Puzzle) (int, []model.Bitset) {
	seed := 0
	for i, p := range puz.Pieces {
		if len(p.Placements) < len(puz.Pieces[seed].Placements) {
			seed = i
		}
	}

	perms := volumeTransforms(puz.Dim)
	seen := make(map[string]bool)
	var out []model.Bitset

	for _, placement := range puz.Pieces[seed].Placements {
		canon := placement
		for _, perm := range perms {
			t := permute(placement, perm)
			if t.Less(canon) {
				canon = t
			}
		}
		key := canon.Key()
		if !seen[key] {
			seen[key] = true
			out = append(out, placement)
		}
	}
	return seed, out
}

// volumeTransforms returns the cubic volume's 24 rotations as cell
// index permutations: perm[i] is the index the cell at i maps to.
func volumeTransforms(dim model.Coord) [][]int {
	type xform func(model.Coord) model.Coord

	compose := func(fns ...xform) xform {
		return func(c model.Coord) model.Coord {
			for _, fn := range fns {
				c = fn(c)
			}
			return c
		}
	}
	id := func(c model.Coord) model.Coord { return c }
	rx, ry, rz := model.Coord.RotateX, model.Coord.RotateY, model.Coord.RotateZ

	// Same 4x6 decomposition as the orientation enumerator: four rolls
	// about x crossed with six face choices.
	var elems []xform
	roll := id
	for i := 0; i < 4; i++ {
		for _, face := range []xform{id, ry, compose(ry, ry, ry), rz, compose(rz, rz), compose(rz, rz, rz)} {
			elems = append(elems, compose(roll, face))
		}
		roll = compose(roll, rx)
	}

	cells := dim.X * dim.Y * dim.Z
	index := func(c model.Coord) int { return c.Z*dim.Y*dim.X + c.Y*dim.X + c.X }

	perms := make([][]int, 0, len(elems))
	for _, elem := range elems {
		// Rotating [0,s)^3 about an axis shifts it out of the
		// nonnegative octant; renormalize by the transformed minimum.
		min := elem(model.Coord{})
		for z := 0; z < dim.Z; z++ {
			for y := 0; y < dim.Y; y++ {
				for x := 0; x < dim.X; x++ {
					t := elem(model.Coord{X: x, Y: y, Z: z})
					if t.X < min.X {
						min.X = t.X
					}
					if t.Y < min.Y {
						min.Y = t.Y
					}
					if t.Z < min.Z {
						min.Z = t.Z
					}
				}
			}
		}

		perm := make([]int, cells)
		for z := 0; z < dim.Z; z++ {
			for y := 0; y < dim.Y; y++ {
				for x := 0; x < dim.X; x++ {
					c := model.Coord{X: x, Y: y, Z: z}
					t := elem(c)
					perm[index(c)] = index(model.Coord{X: t.X - min.X, Y: t.Y - min.Y, Z: t.Z - min.Z})
				}
			}
		}
		perms = append(perms, perm)
	}
	return perms
}

// permute applies a cell index permutation to a bitset.
func permute(b model.Bitset, perm []int) model.Bitset {
	out := model.NewBitset(len(perm))
	for _, i := range b.Indices() {
		out.Set(perm[i])
	}
	return out
}
