// Package geom provides the integer axis-aligned bounding box used by the
// collision engine. It has no dependencies on ebitengine, donburi, or resolv.
package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeExtent = errors.New("negative extent")
	ErrOutOfRange     = errors.New("coordinate out of range")
)

// Point is an integer world position.
type Point struct {
	X, Y int32
}

// Vec is an integer offset or per-axis penetration pair.
type Vec struct {
	X, Y int64
}

// LenSq returns the squared magnitude of v.
func (v Vec) LenSq() int64 {
	return v.X*v.X + v.Y*v.Y
}

// Rect is an axis-aligned bounding box. The origin is the top-left corner.
// Edges are computed in int64 so X+W never overflows.
type Rect struct {
	X, Y int32
	W, H uint32
}

// NewRect builds a Rect from signed values, rejecting negative extents and
// origins that do not fit in int32.
func NewRect(x, y, w, h int) (Rect, error) {
	if w < 0 || h < 0 {
		return Rect{}, fmt.Errorf("rect %dx%d at (%d,%d): %w", w, h, x, y, ErrNegativeExtent)
	}
	if x < math.MinInt32 || x > math.MaxInt32 || y < math.MinInt32 || y > math.MaxInt32 {
		return Rect{}, fmt.Errorf("rect origin (%d,%d): %w", x, y, ErrOutOfRange)
	}
	if uint64(w) > math.MaxUint32 || uint64(h) > math.MaxUint32 {
		return Rect{}, fmt.Errorf("rect extent %dx%d: %w", w, h, ErrOutOfRange)
	}
	return Rect{X: int32(x), Y: int32(y), W: uint32(w), H: uint32(h)}, nil
}

// R is a shorthand for rect literals in level tables and tests.
func R(x, y int32, w, h uint32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int64   { return int64(r.X) }
func (r Rect) Top() int64    { return int64(r.Y) }
func (r Rect) Right() int64  { return int64(r.X) + int64(r.W) }
func (r Rect) Bottom() int64 { return int64(r.Y) + int64(r.H) }

// Center2 returns twice the center point, which is exact in integers.
func (r Rect) Center2() Vec {
	return Vec{
		X: 2*int64(r.X) + int64(r.W),
		Y: 2*int64(r.Y) + int64(r.H),
	}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// At returns r moved so its origin is p.
func (r Rect) At(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	x, y := int64(p.X), int64(p.Y)
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Union returns the smallest Rect containing both a and b.
func Union(a, b Rect) Rect {
	left := min(a.Left(), b.Left())
	top := min(a.Top(), b.Top())
	right := max(a.Right(), b.Right())
	bottom := max(a.Bottom(), b.Bottom())
	return Rect{X: int32(left), Y: int32(top), W: uint32(right - left), H: uint32(bottom - top)}
}

// Touching reports whether both axis projections of a and b overlap.
// Comparisons are inclusive, so edge-adjacent rects touch.
func Touching(a, b Rect) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Top() <= b.Bottom() && b.Top() <= a.Bottom()
}

// Overlap returns the per-axis penetration of a and b. ok is false when
// either axis overlap would be negative.
func Overlap(a, b Rect) (v Vec, ok bool) {
	dx := min(a.Right(), b.Right()) - max(a.Left(), b.Left())
	dy := min(a.Bottom(), b.Bottom()) - max(a.Top(), b.Top())
	if dx < 0 || dy < 0 {
		return Vec{}, false
	}
	return Vec{X: dx, Y: dy}, true
}

// Penetrates reports whether a and b overlap with positive area.
func Penetrates(a, b Rect) bool {
	v, ok := Overlap(a, b)
	return ok && v.X > 0 && v.Y > 0
}
