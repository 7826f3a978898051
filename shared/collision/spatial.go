package collision

import (
	"github.com/automoto/engine2d/shared/geom"
	"github.com/solarlune/resolv"
)

const (
	// DefaultCellSize matches the 16px tiles used by the bundled levels.
	DefaultCellSize = 16

	// maxCells bounds the bucket grid. Scenes spread wider than this fall
	// back to brute force for the call.
	maxCells = 1 << 20
)

// SpatialIndex is a BroadPhase that buckets walls and bodies into a
// resolv.Space and only proposes pairs sharing a cell.
//
// Objects are registered one unit larger than their rect so edge-adjacent
// shapes land in a common cell. World coordinates are shifted by the scene's
// top-left corner because resolv ignores cells at negative positions.
//
// Walls are kept between calls while the same wall slice is passed in and
// the bodies stay inside the current space. Anything else rebuilds it.
type SpatialIndex struct {
	CellSize int

	space  *resolv.Space
	origin geom.Point
	area   geom.Rect
	walls  []geom.Rect
	bodies []*resolv.Object
}

// NewSpatialIndex returns an index with the given cell size, or
// DefaultCellSize when cellSize is not positive.
func NewSpatialIndex(cellSize int) *SpatialIndex {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &SpatialIndex{CellSize: cellSize}
}

func (s *SpatialIndex) Pairs(walls []geom.Rect, bodies []Body, emit func(a DynamicID, b ColliderID)) {
	if len(bodies) == 0 {
		return
	}
	if !s.prepare(walls, bodies) {
		BruteForce{}.Pairs(walls, bodies, emit)
		return
	}

	for i, obj := range s.bodies {
		check := obj.Check(0, 0)
		if check == nil {
			continue
		}
		for _, other := range check.Objects {
			switch id := other.Data.(type) {
			case StaticID:
				emit(DynamicID(i), id)
			case DynamicID:
				if int(id) > i {
					emit(DynamicID(i), id)
				}
			}
		}
	}
}

// Space exposes the underlying bucket grid and the world position of its
// top-left corner, for debug drawing. It is nil before the first call.
func (s *SpatialIndex) Space() (*resolv.Space, geom.Point) {
	return s.space, s.origin
}

func (s *SpatialIndex) prepare(walls []geom.Rect, bodies []Body) bool {
	if s.CellSize <= 0 {
		s.CellSize = DefaultCellSize
	}

	bounds := bodies[0].Rect
	for _, b := range bodies[1:] {
		bounds = geom.Union(bounds, b.Rect)
	}

	if s.space == nil || !sameWalls(s.walls, walls) || !inside(s.area, bounds) {
		for _, w := range walls {
			bounds = geom.Union(bounds, w)
		}
		if !s.rebuild(walls, bounds) {
			return false
		}
	}

	for len(s.bodies) > len(bodies) {
		last := s.bodies[len(s.bodies)-1]
		s.space.Remove(last)
		s.bodies = s.bodies[:len(s.bodies)-1]
	}
	for i, b := range bodies {
		if i < len(s.bodies) {
			s.place(s.bodies[i], b.Rect)
			s.bodies[i].Update()
			continue
		}
		obj := s.object(b.Rect, DynamicID(i))
		s.space.Add(obj)
		s.bodies = append(s.bodies, obj)
	}
	return true
}

func (s *SpatialIndex) rebuild(walls []geom.Rect, bounds geom.Rect) bool {
	cell := int64(s.CellSize)
	cols := (int64(bounds.W)+1)/cell + 2
	rows := (int64(bounds.H)+1)/cell + 2
	if cols*rows > maxCells {
		s.space = nil
		s.bodies = nil
		s.walls = nil
		return false
	}

	s.origin = bounds.Origin()
	s.area = geom.Rect{X: bounds.X, Y: bounds.Y, W: uint32((cols - 1) * cell), H: uint32((rows - 1) * cell)}
	s.space = resolv.NewSpace(int(cols*cell), int(rows*cell), s.CellSize, s.CellSize)
	s.walls = walls
	s.bodies = s.bodies[:0]

	for i, w := range walls {
		s.space.Add(s.object(w, StaticID(i)))
	}
	return true
}

func (s *SpatialIndex) object(r geom.Rect, id ColliderID) *resolv.Object {
	obj := resolv.NewObject(0, 0, 0, 0)
	s.place(obj, r)
	obj.Data = id
	return obj
}

func (s *SpatialIndex) place(obj *resolv.Object, r geom.Rect) {
	obj.X = float64(r.Left() - int64(s.origin.X))
	obj.Y = float64(r.Top() - int64(s.origin.Y))
	obj.W = float64(r.W) + 1
	obj.H = float64(r.H) + 1
}

func sameWalls(a, b []geom.Rect) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func inside(area, r geom.Rect) bool {
	return r.Left() >= area.Left() && r.Top() >= area.Top() &&
		r.Right() <= area.Right() && r.Bottom() <= area.Bottom()
}
