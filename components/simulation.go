package components

import (
	"github.com/automoto/engine2d/shared/sim"
	"github.com/yohamta/donburi"
)

// SimulationData owns the fixed-step world for a scene. Renderers read
// Snapshot, never World directly.
type SimulationData struct {
	World    *sim.World
	Driver   *sim.Driver
	Snapshot sim.Snapshot
	// Previous holds body rects from before the last step, for interpolation.
	Previous sim.Snapshot
	// Entered is set by the world's enter callback and cleared by the
	// camera once it has started a pan.
	Entered bool
}

var Simulation = donburi.NewComponentType[SimulationData]()
