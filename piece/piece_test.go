package piece_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetrion/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rotations = []piece.Rotation{piece.North, piece.East, piece.South, piece.West}

func TestEveryShapeHasFourCells(t *testing.T) {
	for _, typ := range piece.Types {
		for _, rot := range rotations {
			t.Run(fmt.Sprintf("%s/%s", typ, rot), func(t *testing.T) {
				shape := piece.Get(typ, rot)
				count := 0
				for y := 0; y < shape.Size(); y++ {
					for x := 0; x < shape.Size(); x++ {
						if shape.Filled(x, y) {
							count++
						}
					}
				}
				assert.Equal(t, 4, count)
			})
		}
	}
}

func TestShapeSizes(t *testing.T) {
	assert.Equal(t, 4, piece.Get(piece.I, piece.North).Size())
	assert.Equal(t, 2, piece.Get(piece.O, piece.North).Size())
	for _, typ := range []piece.Type{piece.T, piece.S, piece.Z, piece.J, piece.L} {
		assert.Equal(t, 3, piece.Get(typ, piece.East).Size(), typ.String())
	}
}

func TestShapeMatrixIsACopy(t *testing.T) {
	m := piece.Get(piece.T, piece.North).Matrix()
	require.Len(t, m, 3)
	assert.Equal(t, []bool{false, true, false}, m[0])
	assert.Equal(t, []bool{true, true, true}, m[1])

	m[0][0] = true
	assert.False(t, piece.Get(piece.T, piece.North).Filled(0, 0))
}

func TestShapeCells(t *testing.T) {
	cells := piece.Get(piece.I, piece.North).Cells()
	assert.Equal(t, [4]piece.Offset{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, cells)
}

func TestFilledOutsideMatrix(t *testing.T) {
	shape := piece.Get(piece.O, piece.North)
	assert.False(t, shape.Filled(-1, 0))
	assert.False(t, shape.Filled(2, 0))
	assert.False(t, shape.Filled(0, 5))
}

func TestRotationArithmetic(t *testing.T) {
	assert.Equal(t, piece.East, piece.North.CW())
	assert.Equal(t, piece.North, piece.West.CW())
	assert.Equal(t, piece.West, piece.North.CCW())
	assert.Equal(t, piece.South, piece.West.CCW())

	for _, rot := range rotations {
		assert.Equal(t, rot, rot.CW().CCW())
		assert.Equal(t, rot, rot.CW().CW().CW().CW())
		assert.True(t, rot.Adjacent(rot.CW()))
		assert.False(t, rot.Adjacent(rot.CW().CW()))
	}
	assert.Equal(t, "R", piece.East.String())
}

func TestWallKicks(t *testing.T) {
	t.Run("square never kicks", func(t *testing.T) {
		for _, rot := range rotations {
			assert.Empty(t, piece.WallKicks(piece.O, rot, rot.CW()))
			assert.Empty(t, piece.WallKicks(piece.O, rot, rot.CCW()))
		}
	})

	t.Run("adjacent transitions have four offsets", func(t *testing.T) {
		for _, typ := range piece.Types {
			if typ == piece.O {
				continue
			}
			for _, rot := range rotations {
				assert.Len(t, piece.WallKicks(typ, rot, rot.CW()), 4)
				assert.Len(t, piece.WallKicks(typ, rot, rot.CCW()), 4)
			}
		}
	})

	t.Run("reverse transition negates offsets", func(t *testing.T) {
		for _, typ := range []piece.Type{piece.I, piece.T} {
			for _, rot := range rotations {
				forward := piece.WallKicks(typ, rot, rot.CW())
				back := piece.WallKicks(typ, rot.CW(), rot)
				for i := range forward {
					assert.Equal(t, piece.Offset{DX: -forward[i].DX, DY: -forward[i].DY}, back[i])
				}
			}
		}
	})

	t.Run("bar uses its own table", func(t *testing.T) {
		assert.NotEqual(t, piece.WallKicks(piece.T, piece.North, piece.East), piece.WallKicks(piece.I, piece.North, piece.East))
		assert.Equal(t, piece.WallKicks(piece.T, piece.North, piece.East), piece.WallKicks(piece.L, piece.North, piece.East))
		assert.Equal(t, []piece.Offset{{-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, piece.WallKicks(piece.I, piece.North, piece.East))
	})

	t.Run("half turn has no entries", func(t *testing.T) {
		assert.Nil(t, piece.WallKicks(piece.T, piece.North, piece.South))
	})

	t.Run("caller cannot mutate table", func(t *testing.T) {
		kicks := piece.WallKicks(piece.J, piece.North, piece.East)
		kicks[0] = piece.Offset{DX: 99}
		assert.Equal(t, piece.Offset{DX: -1}, piece.WallKicks(piece.J, piece.North, piece.East)[0])
	})
}

func TestSpawn(t *testing.T) {
	assert.Equal(t, piece.Point{X: 4, Y: 0}, piece.Spawn(piece.O))
	assert.Equal(t, piece.Point{X: 3, Y: 0}, piece.Spawn(piece.I))
	assert.Panics(t, func() { piece.Spawn(piece.Type(9)) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "T", piece.T.String())
	assert.Equal(t, "Type(9)", piece.Type(9).String())
}
