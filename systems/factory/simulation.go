package factory

import (
	"fmt"
	"time"

	"github.com/automoto/engine2d/archetypes"
	"github.com/automoto/engine2d/components"
	"github.com/automoto/engine2d/shared/leveldata"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimulationOptions configures CreateSimulation.
type SimulationOptions struct {
	Params   sim.Params
	TickRate int // steps per second, 0 for sim.DefaultStep
	MaxSteps int
}

// CreateSimulation builds the world for levels and the driver that steps it.
func CreateSimulation(ecs *ecs.ECS, levels []*leveldata.Level, opts SimulationOptions) (*donburi.Entry, error) {
	world, err := sim.NewWorld(levels, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	step := sim.DefaultStep
	if opts.TickRate > 0 {
		step = time.Second / time.Duration(opts.TickRate)
	}
	driver := sim.NewDriver(step)
	driver.MaxSteps = opts.MaxSteps

	entry := archetypes.Simulation.Spawn(ecs)
	snap := world.Snapshot()
	components.Simulation.Set(entry, &components.SimulationData{
		World:    world,
		Driver:   driver,
		Snapshot: snap,
		Previous: snap,
	})

	world.OnEnter(func(level int) {
		log.Info("entered level", "index", level, "name", world.Levels[level].Name, "tick", world.Tick)
		if e, ok := components.Simulation.First(ecs.World); ok {
			components.Simulation.Get(e).Entered = true
		}
	})

	for i := range snap.Bodies {
		CreateBody(ecs, i)
	}
	return entry, nil
}
