package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bungogood/polycube/internal/model"
)

// ─── Helpers ───

type pieceSpec struct {
	name  string
	shape string
}

func buildPuzzle(t *testing.T, name string, specs []pieceSpec) *model.Puzzle {
	t.Helper()
	pieces := make([]model.Piece, 0, len(specs))
	for i, spec := range specs {
		shape, err := model.ParseShape(spec.shape)
		require.NoError(t, err)
		pieces = append(pieces, model.NewPiece(spec.name, string(rune('0'+i)), "red", shape))
	}
	puz, err := model.NewPuzzle(name, pieces)
	require.NoError(t, err)
	return puz
}

// slabPuzzle is two 2x2x1 slabs filling a 2x2x2 cube.
func slabPuzzle(t *testing.T) *model.Puzzle {
	return buildPuzzle(t, "slabs", []pieceSpec{
		{"Slab A", "000-100-010-110"},
		{"Slab B", "000-100-010-110"},
	})
}

// slothouberGraatsma is six 1x2x2 blocks and three unit cubes filling a
// 3x3x3 cube.
func slothouberGraatsma(t *testing.T) *model.Puzzle {
	specs := make([]pieceSpec, 0, 9)
	for i := 0; i < 6; i++ {
		specs = append(specs, pieceSpec{"Block", "000-100-010-110"})
	}
	for i := 0; i < 3; i++ {
		specs = append(specs, pieceSpec{"Cube", "000"})
	}
	return buildPuzzle(t, "slothouber-graatsma", specs)
}

func assertValidSolution(t *testing.T, puz *model.Puzzle, sol model.Solution) {
	t.Helper()
	require.Len(t, sol, len(puz.Pieces), "a solution places every piece")

	union := model.NewBitset(puz.CellCount())
	seen := make(map[int]bool)
	for _, placed := range sol {
		assert.False(t, seen[placed.Piece], "piece %d placed twice", placed.Piece)
		seen[placed.Piece] = true
		assert.False(t, union.Intersects(placed.Cells), "placements must be disjoint")
		union.UnionWith(placed.Cells)
	}
	assert.True(t, union.Equal(puz.Full), "placements must cover the full volume")
}

// ─── Solver ───

func TestSolveTwoSlabCube(t *testing.T) {
	puz := slabPuzzle(t)
	result := New(Settings{}).Solve(puz)

	// Every packing splits the cube into two half-slabs; all splits are
	// rotations of each other, so exactly one survives seeding.
	require.Len(t, result.Solutions, 1)
	assertValidSolution(t, puz, result.Solutions[0])
	assert.Positive(t, result.Explored)
}

func TestSolveSlothouberGraatsmaFirstSolution(t *testing.T) {
	puz := slothouberGraatsma(t)
	result := New(Settings{MaxSolutions: 1}).Solve(puz)

	require.Len(t, result.Solutions, 1)
	assertValidSolution(t, puz, result.Solutions[0])
}

func TestSolveIsDeterministic(t *testing.T) {
	first := New(Settings{}).Solve(slabPuzzle(t))
	second := New(Settings{}).Solve(slabPuzzle(t))

	assert.Equal(t, len(first.Solutions), len(second.Solutions))
	assert.Equal(t, first.Explored, second.Explored, "explored count must be reproducible")
}

func TestSolveMaxSolutionsStopsSearch(t *testing.T) {
	puz := slothouberGraatsma(t)

	capped := New(Settings{MaxSolutions: 2}).Solve(puz)
	assert.Len(t, capped.Solutions, 2)
}

func TestSolveCallbackSeesIncreasingExplored(t *testing.T) {
	puz := slothouberGraatsma(t)

	var counts []int
	solver := New(Settings{
		MaxSolutions: 3,
		OnSolution: func(sol model.Solution, explored int) {
			assertValidSolution(t, puz, sol)
			counts = append(counts, explored)
		},
	})
	result := solver.Solve(puz)

	require.Len(t, counts, len(result.Solutions))
	for i := 1; i < len(counts); i++ {
		assert.Greater(t, counts[i], counts[i-1], "explored counter must be monotonic")
	}
}

func TestSolveUnsolvableReturnsNoSolutions(t *testing.T) {
	// 3+3+2 cells imply a 2x2x2 cube, but a 1x1x3 bar does not fit in
	// it at any orientation.
	puz := buildPuzzle(t, "unsolvable", []pieceSpec{
		{"Bar", "000-100-200"},
		{"Bar", "000-100-200"},
		{"Domino", "000-100"},
	})
	result := New(Settings{}).Solve(puz)

	assert.Empty(t, result.Solutions, "no packing of a 2x2x2 cube uses a 3-long bar")
}

// ─── Symmetry seeds ───

func TestSeedPlacementsPicksMostConstrainedPiece(t *testing.T) {
	puz := slothouberGraatsma(t)
	seed, _ := SeedPlacements(puz)

	// Blocks have 3 orientations x 12 offsets = 36 placements, unit
	// cubes 27, so a cube is the most constrained.
	assert.GreaterOrEqual(t, seed, 6, "seed should be one of the unit cubes")
	assert.Len(t, puz.Pieces[seed].Placements, 27)
}

func TestSeedPlacementsDeduplicatesRotations(t *testing.T) {
	puz := slabPuzzle(t)
	_, seeds := SeedPlacements(puz)

	// All six half-cube slabs are rotations of one another.
	require.Len(t, seeds, 1)
	assert.Equal(t, 4, seeds[0].Count())
}

func TestSeedPlacementsAreGenuinePlacements(t *testing.T) {
	puz := slothouberGraatsma(t)
	seed, seeds := SeedPlacements(puz)

	valid := make(map[string]bool)
	for _, placement := range puz.Pieces[seed].Placements {
		valid[placement.Key()] = true
	}
	// A single cell in a 3x3x3 volume falls into one of four rotation
	// orbits: corner, edge, face center, or center.
	require.Len(t, seeds, 4)
	for _, s := range seeds {
		assert.True(t, valid[s.Key()], "seed must come from the piece's placement list")
	}
}

func TestVolumeTransformsFormPermutationGroup(t *testing.T) {
	perms := volumeTransforms(model.Coord{X: 3, Y: 3, Z: 3})
	require.Len(t, perms, 24)

	seen := make(map[string]bool)
	for _, perm := range perms {
		// Each transform is a bijection on cells.
		hit := make([]bool, len(perm))
		for _, target := range perm {
			require.False(t, hit[target], "transform maps two cells to %d", target)
			hit[target] = true
		}

		key := fmt.Sprint(perm)
		assert.False(t, seen[key], "rotation group elements must be distinct")
		seen[key] = true
	}

	// The center cell of a 3x3x3 volume is fixed by every rotation.
	center := 13
	for _, perm := range perms {
		assert.Equal(t, center, perm[center])
	}
}
