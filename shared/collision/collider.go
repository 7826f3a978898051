// Package collision generates AABB contacts between moving bodies and static
// geometry and resolves them by minimum-axis separation.
//
// Bodies are addressed by their index in the slice passed to each call, walls
// by their index in Statics.Walls and tiles by grid coordinate. Those ids are
// only meaningful for the batch they were produced from.
package collision

import (
	"fmt"

	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/tilemap"
)

// ColliderID identifies the second party of a contact. It is implemented
// only by StaticID, TileID and DynamicID.
type ColliderID interface {
	fmt.Stringer
	kind() colliderKind
}

type colliderKind int

const (
	kindStatic colliderKind = iota
	kindTile
	kindDynamic
)

// StaticID is the index of a wall in Statics.Walls.
type StaticID int

// TileID is the grid coordinate of a solid tile.
type TileID struct {
	Col, Row int
}

// DynamicID is the index of a body in the batch.
type DynamicID int

func (StaticID) kind() colliderKind  { return kindStatic }
func (TileID) kind() colliderKind    { return kindTile }
func (DynamicID) kind() colliderKind { return kindDynamic }

func (id StaticID) String() string  { return fmt.Sprintf("wall#%d", int(id)) }
func (id TileID) String() string    { return fmt.Sprintf("tile(%d,%d)", id.Col, id.Row) }
func (id DynamicID) String() string { return fmt.Sprintf("body#%d", int(id)) }

// Body is a moving AABB with an integer velocity in units per step.
type Body struct {
	Rect   geom.Rect
	VX, VY int32
}

// Statics is the immutable geometry of a level. Either field may be empty.
type Statics struct {
	Walls []geom.Rect
	Tiles *tilemap.Grid
}

// Bounds returns the current rect of id. Dynamic ids are looked up in bodies.
func (s *Statics) Bounds(id ColliderID, bodies []Body) (geom.Rect, bool) {
	switch v := id.(type) {
	case StaticID:
		if s == nil || int(v) < 0 || int(v) >= len(s.Walls) {
			return geom.Rect{}, false
		}
		return s.Walls[v], true
	case TileID:
		if s == nil || s.Tiles == nil {
			return geom.Rect{}, false
		}
		return s.Tiles.Bounds(v.Col, v.Row), true
	case DynamicID:
		if int(v) < 0 || int(v) >= len(bodies) {
			return geom.Rect{}, false
		}
		return bodies[v].Rect, true
	}
	return geom.Rect{}, false
}

// Contact records that body A overlapped B by Overlap when it was generated.
type Contact struct {
	A       DynamicID
	B       ColliderID
	Overlap geom.Vec
}

func (c Contact) String() string {
	return fmt.Sprintf("%s-%s (%d,%d)", c.A, c.B, c.Overlap.X, c.Overlap.Y)
}
