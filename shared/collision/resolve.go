package collision

import (
	"sort"

	"github.com/automoto/engine2d/shared/geom"
)

// Result summarises one Restitute call.
type Result struct {
	// Applied counts contacts that were still touching when reached,
	// including zero-depth resting contacts.
	Applied int
	// Stale counts contacts skipped because earlier corrections already
	// separated the pair.
	Stale int
	// Grounded[i] is set when body i was pushed up out of something.
	Grounded []bool
}

// Restitute separates the bodies named in contacts, mutating bodies in place.
//
// Contacts are processed deepest first. Each one is re-measured against the
// live rects, so a correction made earlier in the batch can make a later
// contact stale (skipped) or shallower. The body moves along the axis of least
// penetration, away from the other shape's center, just far enough to clear
// it on that axis. Dynamic pairs split the correction, with the odd unit
// going to B.
func Restitute(statics *Statics, bodies []Body, contacts []Contact) Result {
	res := Result{Grounded: make([]bool, len(bodies))}
	if len(contacts) == 0 {
		return res
	}

	work := make([]Contact, len(contacts))
	copy(work, contacts)
	sort.SliceStable(work, func(i, j int) bool {
		return work[i].Overlap.LenSq() > work[j].Overlap.LenSq()
	})

	for _, c := range work {
		if int(c.A) < 0 || int(c.A) >= len(bodies) {
			continue
		}
		other, ok := statics.Bounds(c.B, bodies)
		if !ok {
			continue
		}
		a := &bodies[c.A]
		live, touching := geom.Overlap(a.Rect, other)
		if !touching {
			res.Stale++
			continue
		}
		if live.X == 0 && live.Y == 0 {
			// Corner touch: no face is shared, so nothing is pushed or stopped.
			continue
		}

		axisX := live.X < live.Y
		ca, cb := a.Rect.Center2(), other.Center2()
		dir := int32(-1)
		if axisX && ca.X > cb.X || !axisX && ca.Y > cb.Y {
			dir = 1
		}

		depth := exitDepth(a.Rect, other, axisX, dir)

		if b, dynamic := c.B.(DynamicID); dynamic {
			if int(b) == int(c.A) {
				continue
			}
			half := int32(depth / 2)
			push(a, axisX, dir*half)
			push(&bodies[b], axisX, -dir*(int32(depth)-half))
			stopInto(a, axisX, dir)
			stopInto(&bodies[b], axisX, -dir)
			if !axisX {
				res.Grounded[c.A] = res.Grounded[c.A] || dir < 0
				res.Grounded[b] = res.Grounded[b] || dir > 0
			}
		} else {
			push(a, axisX, dir*int32(depth))
			stopInto(a, axisX, dir)
			if !axisX && dir < 0 {
				res.Grounded[c.A] = true
			}
		}
		res.Applied++
	}
	return res
}

// exitDepth is the distance a must travel along dir to stop penetrating b.
// It equals the overlap unless one rect spans the other on that axis.
func exitDepth(a, b geom.Rect, axisX bool, dir int32) int64 {
	switch {
	case axisX && dir < 0:
		return a.Right() - b.Left()
	case axisX:
		return b.Right() - a.Left()
	case dir < 0:
		return a.Bottom() - b.Top()
	default:
		return b.Bottom() - a.Top()
	}
}

func push(b *Body, axisX bool, d int32) {
	if axisX {
		b.Rect.X += d
	} else {
		b.Rect.Y += d
	}
}

// stopInto zeroes the velocity on the axis when it points against dir, the
// direction the body was pushed.
func stopInto(b *Body, axisX bool, dir int32) {
	if axisX {
		if b.VX*dir < 0 {
			b.VX = 0
		}
		return
	}
	if b.VY*dir < 0 {
		b.VY = 0
	}
}
