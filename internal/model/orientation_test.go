package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	shape, err := ParseShape("000-100-010-110")
	require.NoError(t, err)
	assert.Len(t, shape.Cells, 4)
	assert.Contains(t, shape.Cells, Coord{X: 1, Y: 1, Z: 0})
}

func TestParseShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short code", "00-100"},
		{"too long code", "0000-100"},
		{"non-numeric", "0a0-100"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseShape(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeShiftsToOrigin(t *testing.T) {
	o := NewOrientation([]Coord{{X: 2, Y: 3, Z: 1}, {X: 3, Y: 3, Z: 1}})
	assert.Contains(t, o.Cells, Coord{X: 0, Y: 0, Z: 0})
	assert.Contains(t, o.Cells, Coord{X: 1, Y: 0, Z: 0})

	neg := NewOrientation([]Coord{{X: -1, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}})
	assert.Equal(t, o.Key(), neg.Key(), "normalization should make translated copies identical")
}

func TestCoordRotationsReturnAfterFourSteps(t *testing.T) {
	c := Coord{X: 1, Y: 2, Z: 3}
	assert.Equal(t, c, c.RotateX().RotateX().RotateX().RotateX())
	assert.Equal(t, c, c.RotateY().RotateY().RotateY().RotateY())
	assert.Equal(t, c, c.RotateZ().RotateZ().RotateZ().RotateZ())
}

func TestRotationsCounts(t *testing.T) {
	tests := []struct {
		name  string
		shape string
		want  int
	}{
		{"unit cube", "000", 1},
		{"domino", "000-100", 3},
		{"square slab", "000-100-010-110", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shape, err := ParseShape(tc.shape)
			require.NoError(t, err)
			assert.Len(t, shape.Rotations(), tc.want)
		})
	}
}

func TestRotationsPreserveCellCount(t *testing.T) {
	shape, err := ParseShape("000-100-010-110-210")
	require.NoError(t, err)
	for _, r := range shape.Rotations() {
		assert.Len(t, r.Cells, len(shape.Cells), "rotation must not change the cell count")
	}
}

func TestRotationsAreClosedUnderRotation(t *testing.T) {
	shape, err := ParseShape("000-100-110-111")
	require.NoError(t, err)

	rotations := shape.Rotations()
	keys := make(map[string]bool, len(rotations))
	for _, r := range rotations {
		keys[r.Key()] = true
	}

	for _, r := range rotations {
		assert.True(t, keys[r.RotateX().Key()], "x rotation should stay in the set")
		assert.True(t, keys[r.RotateY().Key()], "y rotation should stay in the set")
		assert.True(t, keys[r.RotateZ().Key()], "z rotation should stay in the set")
	}
}

func TestRotationsAreDistinct(t *testing.T) {
	shape, err := ParseShape("000-100-110-111")
	require.NoError(t, err)

	rotations := shape.Rotations()
	seen := make(map[string]bool)
	for _, r := range rotations {
		assert.False(t, seen[r.Key()], "duplicate orientation in rotation set")
		seen[r.Key()] = true
	}
	assert.LessOrEqual(t, len(rotations), 24, "cube rotation group has 24 elements")
}

func TestKeyDistinguishesOrientations(t *testing.T) {
	// A 1x1x3 bar along x and along z are different orientations and
	// must key differently, while a full turn comes back to the same key.
	bar, err := ParseShape("000-100-200")
	require.NoError(t, err)
	assert.NotEqual(t, bar.Key(), bar.RotateY().Key())
	assert.Equal(t, bar.Key(), bar.RotateY().RotateY().RotateY().RotateY().Key())
}

func TestBoundsReportsMaxExtent(t *testing.T) {
	shape, err := ParseShape("000-100-010-002")
	require.NoError(t, err)
	assert.Equal(t, Coord{X: 1, Y: 1, Z: 2}, shape.Bounds())
}
