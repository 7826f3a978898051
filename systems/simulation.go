package systems

import (
	"time"

	"github.com/automoto/engine2d/components"
	cfg "github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/automoto/engine2d/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.Body))

// UpdateSimulation feeds one frame of wall time into the fixed-step driver.
func UpdateSimulation(e *ecs.ECS) {
	s, ok := getSimulation(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		RestartSimulation(e)
		return
	}
	AdvanceSimulation(e, s, frameDuration(), SimInput(input))
}

// frameDuration is the wall time between two ebiten updates. ebiten calls
// Update exactly TPS times per second and catches up after stalls itself,
// so the nominal interval is the elapsed time.
func frameDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// AdvanceSimulation runs as many fixed steps as elapsed covers, then
// publishes the new snapshot and keeps body entities in line with it.
// It returns the number of steps taken.
func AdvanceSimulation(e *ecs.ECS, s *components.SimulationData, elapsed time.Duration, in sim.Input) int {
	steps := s.Driver.Advance(elapsed, func() {
		s.Previous = s.Snapshot
		sim.Step(s.World, in)
		s.Snapshot = s.World.Snapshot()
	})

	if s.World.State == sim.Finished {
		finished := GetOrCreateFinished(e)
		if !finished.IsFinished {
			finished.IsFinished = true
			finished.Ticks = s.World.Tick
			log.Info("all levels complete", "ticks", s.World.Tick)
		}
	}

	syncBodies(e, len(s.Snapshot.Bodies))
	return steps
}

// RestartSimulation puts the current level back to its spawn state.
func RestartSimulation(e *ecs.ECS) {
	s, ok := getSimulation(e)
	if !ok {
		return
	}
	s.World.Restart()
	s.Driver.Reset()
	s.Snapshot = s.World.Snapshot()
	s.Previous = s.Snapshot
	GetOrCreateFinished(e).IsFinished = false
	syncBodies(e, len(s.Snapshot.Bodies))
	log.Debug("restarted level", "index", s.World.Level)
}

func getSimulation(e *ecs.ECS) (*components.SimulationData, bool) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}

// syncBodies keeps one body entity per simulated body. Levels differ in
// body count, so entities are rebuilt when the count changes.
func syncBodies(e *ecs.ECS, n int) {
	count := bodyQuery.Count(e.World)
	if count == n {
		return
	}

	var stale []*donburi.Entry
	bodyQuery.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		e.World.Remove(entry.Entity())
	}
	for i := 0; i < n; i++ {
		factory.CreateBody(e, i)
	}
}
