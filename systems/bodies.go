package systems

import (
	"github.com/automoto/engine2d/components"
	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/shared/gamemath"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/automoto/engine2d/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBodies draws every body entity between its last two stepped
// positions, using the driver's leftover fraction of a step.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}
	s, ok := getSimulation(e)
	if !ok {
		return
	}
	alpha := s.Driver.Alpha()

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		idx := components.Body.Get(entry).Index
		if idx >= len(s.Snapshot.Bodies) {
			return
		}
		x, y := interpolate(s.Previous, s.Snapshot, idx, alpha)
		r := s.Snapshot.Bodies[idx]

		clr := config.Colors.Body
		if entry.HasComponent(tags.Player) {
			clr = config.Colors.Player
		}
		vector.FillRect(screen, float32(x+camX), float32(y+camY), float32(r.W), float32(r.H), clr, false)
	})
}

// interpolate blends body idx between two snapshots. Across a level entry,
// including a respawn on the same level, the bodies are unrelated, so the
// newer position is used as is.
func interpolate(prev, curr sim.Snapshot, idx int, alpha float64) (float64, float64) {
	c := curr.Bodies[idx]
	if prev.Entries != curr.Entries || prev.Tick == curr.Tick || idx >= len(prev.Bodies) {
		return float64(c.X), float64(c.Y)
	}
	p := prev.Bodies[idx]
	return gamemath.Lerp(float64(p.X), float64(c.X), alpha), gamemath.Lerp(float64(p.Y), float64(c.Y), alpha)
}
