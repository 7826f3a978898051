// Package tilemap maps world positions onto a grid of tile types so solid
// tiles can stand in for explicit walls during collision.
package tilemap

import (
	"errors"
	"fmt"

	"github.com/automoto/engine2d/shared/geom"
)

var ErrBadGrid = errors.New("invalid tile grid")

// Empty marks a cell with no tile.
const Empty = -1

// OutOfBounds decides how cells outside the grid behave.
type OutOfBounds int

const (
	OutOfBoundsSolid OutOfBounds = iota
	OutOfBoundsEmpty
)

// Tile describes one tile type.
type Tile struct {
	Solid bool
}

// Tileset is the per-type table indexed by cell values.
type Tileset struct {
	Tiles []Tile
}

// IsSolid reports whether tile type idx is solid. Unknown types are not.
func (ts *Tileset) IsSolid(idx int) bool {
	if ts == nil || idx < 0 || idx >= len(ts.Tiles) {
		return false
	}
	return ts.Tiles[idx].Solid
}

// Grid is a row-major tile grid anchored at Origin.
type Grid struct {
	Origin      geom.Point
	TileW       int32
	TileH       int32
	Cols        int
	Rows        int
	Cells       []int
	Tileset     *Tileset
	OutOfBounds OutOfBounds
}

// NewGrid builds and validates a grid.
func NewGrid(origin geom.Point, cols, rows int, tileW, tileH int32, tileset *Tileset, cells []int) (*Grid, error) {
	g := &Grid{
		Origin:  origin,
		TileW:   tileW,
		TileH:   tileH,
		Cols:    cols,
		Rows:    rows,
		Cells:   cells,
		Tileset: tileset,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks tile sizes, dimensions and cell indices.
func (g *Grid) Validate() error {
	if g.TileW <= 0 || g.TileH <= 0 {
		return fmt.Errorf("%w: tile size %dx%d", ErrBadGrid, g.TileW, g.TileH)
	}
	if g.Cols < 0 || g.Rows < 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrBadGrid, g.Cols, g.Rows)
	}
	if len(g.Cells) != g.Cols*g.Rows {
		return fmt.Errorf("%w: %d cells for %dx%d grid", ErrBadGrid, len(g.Cells), g.Cols, g.Rows)
	}
	if g.Tileset == nil {
		return fmt.Errorf("%w: missing tileset", ErrBadGrid)
	}
	for i, c := range g.Cells {
		if c != Empty && (c < 0 || c >= len(g.Tileset.Tiles)) {
			return fmt.Errorf("%w: cell %d has tile %d, tileset has %d", ErrBadGrid, i, c, len(g.Tileset.Tiles))
		}
	}
	return nil
}

// InBounds reports whether (col, row) is inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

// TileAt returns the tile type at (col, row), or Empty when out of bounds.
func (g *Grid) TileAt(col, row int) int {
	if !g.InBounds(col, row) {
		return Empty
	}
	return g.Cells[row*g.Cols+col]
}

// SolidAt applies the out-of-bounds policy and the tileset solid flags.
func (g *Grid) SolidAt(col, row int) bool {
	if !g.InBounds(col, row) {
		return g.OutOfBounds == OutOfBoundsSolid
	}
	return g.Tileset.IsSolid(g.Cells[row*g.Cols+col])
}

// CellAt converts a world position to grid coordinates, flooring toward
// negative infinity so positions left of or above the origin map to
// negative cells.
func (g *Grid) CellAt(p geom.Point) (col, row int) {
	return floorDiv(int64(p.X)-int64(g.Origin.X), int64(g.TileW)),
		floorDiv(int64(p.Y)-int64(g.Origin.Y), int64(g.TileH))
}

// Bounds returns the world rect of cell (col, row).
func (g *Grid) Bounds(col, row int) geom.Rect {
	return geom.Rect{
		X: int32(int64(g.Origin.X) + int64(col)*int64(g.TileW)),
		Y: int32(int64(g.Origin.Y) + int64(row)*int64(g.TileH)),
		W: uint32(g.TileW),
		H: uint32(g.TileH),
	}
}

// TileAndBoundsAt returns whether the tile under p is solid together with
// its bounds, so the caller can treat it exactly like a wall.
func (g *Grid) TileAndBoundsAt(p geom.Point) (bool, geom.Rect) {
	col, row := g.CellAt(p)
	return g.SolidAt(col, row), g.Bounds(col, row)
}

// CellsCovering returns the inclusive cell range touched by r. Edges count,
// so a rect whose edge lies on a tile boundary also covers the cell on the
// other side of it.
func (g *Grid) CellsCovering(r geom.Rect) (c0, r0, c1, r1 int) {
	c0 = floorDiv(r.Left()-1-int64(g.Origin.X), int64(g.TileW))
	r0 = floorDiv(r.Top()-1-int64(g.Origin.Y), int64(g.TileH))
	c1 = floorDiv(r.Right()-int64(g.Origin.X), int64(g.TileW))
	r1 = floorDiv(r.Bottom()-int64(g.Origin.Y), int64(g.TileH))
	return c0, r0, c1, r1
}

// WorldBounds returns the rect covered by the whole grid.
func (g *Grid) WorldBounds() geom.Rect {
	return geom.Rect{
		X: g.Origin.X,
		Y: g.Origin.Y,
		W: uint32(int64(g.Cols) * int64(g.TileW)),
		H: uint32(int64(g.Rows) * int64(g.TileH)),
	}
}

// EachSolid calls fn for every solid in-bounds cell in row-major order.
func (g *Grid) EachSolid(fn func(col, row int, bounds geom.Rect)) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.SolidAt(col, row) {
				fn(col, row, g.Bounds(col, row))
			}
		}
	}
}

func floorDiv(a, b int64) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return int(q)
}
