package collision

import (
	"sort"

	"github.com/automoto/engine2d/shared/geom"
)

// BroadPhase proposes candidate pairs between bodies and walls. A candidate
// may be emitted more than once and need not overlap; the narrow phase in
// Gatherer decides. Dynamic pairs must be emitted with the lower index as a.
type BroadPhase interface {
	Pairs(walls []geom.Rect, bodies []Body, emit func(a DynamicID, b ColliderID))
}

// BruteForce tests every body against every other body and every wall.
type BruteForce struct{}

func (BruteForce) Pairs(walls []geom.Rect, bodies []Body, emit func(a DynamicID, b ColliderID)) {
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			emit(DynamicID(i), DynamicID(j))
		}
		for w := range walls {
			emit(DynamicID(i), StaticID(w))
		}
	}
}

// Gatherer produces contacts using a pluggable broad phase. The zero value
// uses BruteForce.
type Gatherer struct {
	Broad BroadPhase
}

// GatherContacts is the brute force contact generator.
func GatherContacts(statics *Statics, bodies []Body) []Contact {
	var g Gatherer
	return g.Gather(statics, bodies)
}

// Gather returns one contact per touching body pair, body-wall pair and
// body-solid-tile pair, in canonical order: by A, then walls, tiles and
// bodies, then by B index.
func (g *Gatherer) Gather(statics *Statics, bodies []Body) []Contact {
	broad := g.Broad
	if broad == nil {
		broad = BruteForce{}
	}

	var walls []geom.Rect
	if statics != nil {
		walls = statics.Walls
	}

	var contacts []Contact
	broad.Pairs(walls, bodies, func(a DynamicID, b ColliderID) {
		rb, ok := statics.Bounds(b, bodies)
		if !ok {
			return
		}
		if v, ok := geom.Overlap(bodies[a].Rect, rb); ok {
			contacts = append(contacts, Contact{A: a, B: b, Overlap: v})
		}
	})

	if statics != nil && statics.Tiles != nil {
		grid := statics.Tiles
		for i := range bodies {
			r := bodies[i].Rect
			c0, r0, c1, r1 := grid.CellsCovering(r)
			for row := r0; row <= r1; row++ {
				for col := c0; col <= c1; col++ {
					if !grid.SolidAt(col, row) {
						continue
					}
					if v, ok := geom.Overlap(r, grid.Bounds(col, row)); ok {
						contacts = append(contacts, Contact{A: DynamicID(i), B: TileID{Col: col, Row: row}, Overlap: v})
					}
				}
			}
		}
	}

	return canonical(contacts)
}

func canonical(contacts []Contact) []Contact {
	sort.Slice(contacts, func(i, j int) bool {
		return contactLess(contacts[i], contacts[j])
	})
	out := contacts[:0]
	for i, c := range contacts {
		if i > 0 && sameKey(c, contacts[i-1]) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func contactLess(a, b Contact) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	ka, kb := a.B.kind(), b.B.kind()
	if ka != kb {
		return ka < kb
	}
	switch x := a.B.(type) {
	case StaticID:
		return x < b.B.(StaticID)
	case DynamicID:
		return x < b.B.(DynamicID)
	case TileID:
		y := b.B.(TileID)
		if x.Row != y.Row {
			return x.Row < y.Row
		}
		return x.Col < y.Col
	}
	return false
}

func sameKey(a, b Contact) bool {
	return a.A == b.A && a.B == b.B
}
