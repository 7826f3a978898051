package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/engine2d/assets"
	cfg "github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/shared/leveldata"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/automoto/engine2d/systems"
	"github.com/automoto/engine2d/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// LevelSource picks what a WorldScene plays.
type LevelSource int

const (
	// SourceLevels plays the bundled level sequence.
	SourceLevels LevelSource = iota
	// SourceDemo plays the single-screen AABB demo and never finishes.
	SourceDemo
)

func (s LevelSource) String() string {
	if s == SourceDemo {
		return "demo"
	}
	return "levels"
}

// WorldScene runs the simulation for a level sequence.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	source       LevelSource
	err          error
	leave        bool
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, source LevelSource) *WorldScene {
	return &WorldScene{sceneChanger: sc, source: source}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		log.Error("could not start scene", "source", ws.source, "error", ws.err)
		ws.sceneChanger.ChangeScene(NewTitleSceneWithStatus(ws.sceneChanger, ws.err.Error()))
		return
	}

	ws.ecs.Update()

	if ws.leave || systems.ActionJustPressed(ws.ecs, cfg.ActionMenuBack) {
		ws.sceneChanger.ChangeScene(NewTitleScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	levels, err := ws.loadLevels()
	if err != nil {
		ws.err = err
		return
	}

	params, err := cfg.SimParams()
	if err != nil {
		ws.err = fmt.Errorf("invalid physics config: %w", err)
		return
	}
	if ws.source == SourceDemo {
		params.End = sim.EndClamp
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.NewUpdateFinished(func() { ws.leave = true }))

	// Game systems stop once the run is finished
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSimulation))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawBodies)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)
	e.AddRenderer(cfg.HUD, systems.DrawFinished)

	factory.CreateLevel(e, ws.source.String(), levels)
	if _, err := factory.CreateSimulation(e, levels, factory.SimulationOptions{
		Params:   params,
		TickRate: cfg.Sim.TickRate,
		MaxSteps: cfg.Sim.MaxStepsPerFrame,
	}); err != nil {
		ws.err = err
		return
	}
	factory.CreateCamera(e, math.Vec2{})
	systems.SnapCamera(e)
	// Keys still held from the previous scene must not count as new presses.
	systems.UpdateInput(e)

	ws.ecs = e
	log.Info("scene started", "source", ws.source, "levels", len(levels), "mode", params.Mode, "end", params.End)
}

func (ws *WorldScene) loadLevels() ([]*leveldata.Level, error) {
	if ws.source == SourceDemo {
		return assets.LoadDemo()
	}
	return assets.LoadLevels()
}
