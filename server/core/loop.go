// Package core runs the simulation without a window: a ticker-driven or
// as-fast-as-possible loop fed by a scripted input sequence.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/charmbracelet/log"
)

// Summary describes a finished run.
type Summary struct {
	Steps       uint64
	Level       int
	LevelName   string
	State       sim.State
	Transitions int
	Player      geom.Rect
	Contacts    int
	Applied     int
	Stale       int
	Elapsed     time.Duration
}

func (s Summary) String() string {
	return fmt.Sprintf("%d steps, level %d (%s), %s, %d transitions, player at (%d,%d)",
		s.Steps, s.Level, s.LevelName, s.State, s.Transitions, s.Player.X, s.Player.Y)
}

type GameLoop struct {
	world    *sim.World
	driver   *sim.Driver
	script   *Script
	tickRate int
	logger   *log.Logger

	steps    int
	summary  Summary
	stopChan chan struct{}
}

func NewGameLoop(world *sim.World, script *Script, tickRate int, logger *log.Logger) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &GameLoop{
		world:    world,
		driver:   sim.NewDriver(time.Second / time.Duration(tickRate)),
		script:   script,
		tickRate: tickRate,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
	world.OnEnter(func(level int) {
		g.summary.Transitions++
		g.logger.Info("entered level", "index", level, "name", world.Levels[level].Name, "tick", world.Tick)
	})
	return g
}

// Run steps the world in real time until the script runs out, the world
// finishes, ctx is cancelled or Stop is called.
func (g *GameLoop) Run(ctx context.Context) Summary {
	ticker := time.NewTicker(g.driver.Step)
	defer ticker.Stop()

	g.logger.Info("game loop started", "tickRate", g.tickRate, "steps", g.script.Len())
	start := time.Now()
	last := start

	for !g.done() {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop cancelled")
			return g.finish(time.Since(start))
		case <-g.stopChan:
			g.logger.Info("game loop stopped")
			return g.finish(time.Since(start))
		case now := <-ticker.C:
			g.driver.Advance(now.Sub(last), g.tick)
			last = now
		}
	}
	return g.finish(time.Since(start))
}

// RunFast steps the world without waiting, one step per iteration. The
// result is identical to Run for the same script.
func (g *GameLoop) RunFast() Summary {
	start := time.Now()
	for !g.done() {
		g.driver.Advance(g.driver.Step, g.tick)
	}
	return g.finish(time.Since(start))
}

// Stop ends Run. It must be called at most once.
func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) done() bool {
	return g.world.State == sim.Finished || g.steps >= g.script.Len()
}

func (g *GameLoop) tick() {
	if g.done() {
		return
	}
	sim.Step(g.world, g.script.Input(g.steps))
	g.steps++

	res := g.world.LastResult()
	g.summary.Contacts += len(g.world.Contacts())
	g.summary.Applied += res.Applied
	g.summary.Stale += res.Stale
	if res.Stale > 0 {
		g.logger.Debug("stale contacts", "tick", g.world.Tick, "stale", res.Stale)
	}
}

func (g *GameLoop) finish(elapsed time.Duration) Summary {
	s := g.summary
	s.Steps = uint64(g.steps)
	s.Level = g.world.Level
	s.LevelName = g.world.Current().Name
	s.State = g.world.State
	s.Player = g.world.Player().Rect
	s.Elapsed = elapsed
	g.logger.Info("run complete", "steps", s.Steps, "level", s.LevelName, "state", s.State, "transitions", s.Transitions)
	return s
}
