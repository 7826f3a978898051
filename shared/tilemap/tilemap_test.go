package tilemap

import (
	"testing"

	"github.com/automoto/engine2d/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTileset = &Tileset{Tiles: []Tile{{Solid: false}, {Solid: true}, {Solid: true}}}

// 4x3 grid, 16px tiles:
//
//	1 1 1 1
//	1 0 . 1
//	1 2 1 1
func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(geom.Point{X: 0, Y: 0}, 4, 3, 16, 16, testTileset, []int{
		1, 1, 1, 1,
		1, 0, Empty, 1,
		1, 2, 1, 1,
	})
	require.NoError(t, err)
	return g
}

func TestTileAndBoundsAt(t *testing.T) {
	g := newTestGrid(t)

	tests := []struct {
		name   string
		pos    geom.Point
		solid  bool
		bounds geom.Rect
	}{
		{"solid corner", geom.Point{X: 0, Y: 0}, true, geom.R(0, 0, 16, 16)},
		{"non-solid type", geom.Point{X: 20, Y: 20}, false, geom.R(16, 16, 16, 16)},
		{"empty cell", geom.Point{X: 47, Y: 31}, false, geom.R(32, 16, 16, 16)},
		{"second solid type", geom.Point{X: 16, Y: 32}, true, geom.R(16, 32, 16, 16)},
		{"out of bounds right", geom.Point{X: 64, Y: 0}, true, geom.R(64, 0, 16, 16)},
		{"out of bounds negative", geom.Point{X: -1, Y: -1}, true, geom.R(-16, -16, 16, 16)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			solid, bounds := g.TileAndBoundsAt(tc.pos)
			assert.Equal(t, tc.solid, solid)
			assert.Equal(t, tc.bounds, bounds)
		})
	}
}

func TestOutOfBoundsPolicy(t *testing.T) {
	g := newTestGrid(t)
	assert.True(t, g.SolidAt(-1, 0))

	g.OutOfBounds = OutOfBoundsEmpty
	assert.False(t, g.SolidAt(-1, 0))
	assert.False(t, g.SolidAt(4, 2))
	assert.True(t, g.SolidAt(3, 2))
}

func TestCellsCovering(t *testing.T) {
	g := newTestGrid(t)

	c0, r0, c1, r1 := g.CellsCovering(geom.R(16, 16, 16, 16))
	assert.Equal(t, []int{0, 0, 2, 2}, []int{c0, r0, c1, r1}, "edges on tile boundaries cover the neighbouring cells")

	c0, r0, c1, r1 = g.CellsCovering(geom.R(17, 17, 14, 14))
	assert.Equal(t, []int{1, 1, 1, 1}, []int{c0, r0, c1, r1})

	c0, r0, c1, r1 = g.CellsCovering(geom.R(-3, 4, 2, 2))
	assert.Equal(t, []int{-1, 0, -1, 0}, []int{c0, r0, c1, r1})
}

func TestValidate(t *testing.T) {
	_, err := NewGrid(geom.Point{}, 2, 2, 16, 16, testTileset, []int{1, 1, 1})
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = NewGrid(geom.Point{}, 1, 1, 0, 16, testTileset, []int{1})
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = NewGrid(geom.Point{}, 1, 1, 16, 16, testTileset, []int{7})
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = NewGrid(geom.Point{}, 1, 1, 16, 16, nil, []int{Empty})
	assert.ErrorIs(t, err, ErrBadGrid)
}

func TestEachSolidWithOrigin(t *testing.T) {
	g, err := NewGrid(geom.Point{X: 129, Y: 0}, 2, 1, 8, 8, testTileset, []int{1, 0})
	require.NoError(t, err)

	var got []geom.Rect
	g.EachSolid(func(col, row int, bounds geom.Rect) {
		got = append(got, bounds)
	})
	assert.Equal(t, []geom.Rect{geom.R(129, 0, 8, 8)}, got)

	col, row := g.CellAt(geom.Point{X: 128, Y: 0})
	assert.Equal(t, -1, col)
	assert.Equal(t, 0, row)
	assert.Equal(t, geom.R(129, 0, 16, 8), g.WorldBounds())
}
