package systems

import (
	"testing"
	"time"

	"github.com/automoto/engine2d/components"
	cfg "github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/leveldata"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/automoto/engine2d/systems/factory"
	"github.com/automoto/engine2d/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newTestSimulation(t *testing.T, levels ...*leveldata.Level) (*ecs.ECS, *components.SimulationData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry, err := factory.CreateSimulation(e, levels, factory.SimulationOptions{Params: sim.DefaultParams()})
	require.NoError(t, err)
	return e, components.Simulation.Get(entry)
}

func level(name string, spawn geom.Point, exit geom.Rect, bodies ...leveldata.BodySpawn) *leveldata.Level {
	return &leveldata.Level{Name: name, Spawn: spawn, Exit: &exit, Bodies: bodies}
}

func countBodies(e *ecs.ECS) (players, enemies int) {
	tags.Player.Each(e.World, func(*donburi.Entry) { players++ })
	tags.Enemy.Each(e.World, func(*donburi.Entry) { enemies++ })
	return
}

func TestAdvanceSimulationFollowsLevels(t *testing.T) {
	e, s := newTestSimulation(t,
		level("one", geom.Point{X: 22, Y: 0}, geom.R(40, 0, 16, 16),
			leveldata.BodySpawn{X: 0, Y: 100, W: 8, H: 8, PatrolVX: 1}),
		level("two", geom.Point{X: 100, Y: 100}, geom.R(5000, 5000, 16, 16)),
	)

	p, en := countBodies(e)
	assert.Equal(t, 1, p)
	assert.Equal(t, 1, en)

	steps := AdvanceSimulation(e, s, sim.DefaultStep, sim.Input{Right: true})
	assert.Equal(t, 1, steps)
	assert.Equal(t, 1, s.Snapshot.Level)
	assert.Equal(t, "two", s.Snapshot.LevelName)
	assert.True(t, s.Entered)

	p, en = countBodies(e)
	assert.Equal(t, 1, p)
	assert.Zero(t, en, "level two has no patrols")

	assert.Zero(t, AdvanceSimulation(e, s, sim.DefaultStep/2, sim.Input{}))
	assert.False(t, IsFinished(e))
}

func TestFinishAndRestart(t *testing.T) {
	e, s := newTestSimulation(t, level("last", geom.Point{X: 22, Y: 0}, geom.R(40, 0, 16, 16)))

	calls := 0
	guarded := WithGameplayChecks(func(*ecs.ECS) { calls++ })
	guarded(e)

	AdvanceSimulation(e, s, sim.DefaultStep, sim.Input{Right: true})
	require.True(t, IsFinished(e))
	assert.Equal(t, uint64(1), GetOrCreateFinished(e).Ticks)

	guarded(e)
	assert.Equal(t, 1, calls, "gameplay systems pause once finished")

	RestartSimulation(e)
	assert.False(t, IsFinished(e))
	assert.Equal(t, sim.InLevel, s.World.State)
	assert.Equal(t, geom.R(22, 0, 16, 16), s.Snapshot.Bodies[0])

	done := false
	NewUpdateFinished(func() { done = true })(e)
	assert.False(t, done, "overlay input is ignored while playing")
}

func TestCameraTarget(t *testing.T) {
	tests := []struct {
		name           string
		player         geom.Rect
		levelW, levelH int32
		want           math.Vec2
	}{
		{"clamped to left edge", geom.R(100, 100, 16, 16), 1000, 1000, math.Vec2{X: 160, Y: 120}},
		{"follows in the middle", geom.R(492, 492, 16, 16), 1000, 1000, math.Vec2{X: 500, Y: 500}},
		{"clamped to far edge", geom.R(990, 990, 10, 10), 1000, 1000, math.Vec2{X: 840, Y: 880}},
		{"small level is centred", geom.R(10, 10, 16, 16), 200, 100, math.Vec2{X: 100, Y: 50}},
		{"unbounded", geom.R(-40, 10, 16, 16), 0, 0, math.Vec2{X: -32, Y: 18}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cameraTarget(tt.player, tt.levelW, tt.levelH, 320, 240))
		})
	}
}

func TestCameraPan(t *testing.T) {
	camera := &components.CameraData{}
	startPan(camera, math.Vec2{X: 100, Y: 50}, 1)
	require.True(t, camera.Panning())

	stepPan(camera, 0.5)
	assert.InDelta(t, 50, camera.Position.X, 0.01)
	assert.True(t, camera.Panning())

	stepPan(camera, 0.6)
	assert.False(t, camera.Panning())
	assert.InDelta(t, 100, camera.Position.X, 1e-4)
	assert.InDelta(t, 50, camera.Position.Y, 1e-4)

	startPan(camera, math.Vec2{X: 7, Y: 8}, 0)
	assert.False(t, camera.Panning())
	assert.Equal(t, math.Vec2{X: 7, Y: 8}, camera.Position)
}

func TestInterpolate(t *testing.T) {
	prev := sim.Snapshot{Level: 0, Tick: 1, Entries: 1, Bodies: []geom.Rect{geom.R(0, 0, 4, 4)}}
	curr := sim.Snapshot{Level: 0, Tick: 2, Entries: 1, Bodies: []geom.Rect{geom.R(10, -4, 4, 4)}}

	x, y := interpolate(prev, curr, 0, 0.25)
	assert.InDelta(t, 2.5, x, 1e-9)
	assert.InDelta(t, -1, y, 1e-9)

	curr.Level, curr.Entries = 1, 2
	x, y = interpolate(prev, curr, 0, 0.25)
	assert.Equal(t, 10.0, x, "no blending across a level change")
	assert.Equal(t, -4.0, y)
}

func TestInterpolateSkipsRespawnOnSameLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	params := sim.DefaultParams()
	params.End = sim.EndClamp
	entry, err := factory.CreateSimulation(e, []*leveldata.Level{
		level("demo", geom.Point{X: 10, Y: 0}, geom.R(40, 0, 16, 16)),
	}, factory.SimulationOptions{Params: params})
	require.NoError(t, err)
	s := components.Simulation.Get(entry)

	require.Equal(t, 6, AdvanceSimulation(e, s, 6*sim.DefaultStep, sim.Input{Right: true}))
	require.Equal(t, int32(22), s.Snapshot.Bodies[0].X)
	require.Equal(t, 1, AdvanceSimulation(e, s, sim.DefaultStep, sim.Input{Right: true}))
	require.Equal(t, s.Previous.Level, s.Snapshot.Level)
	require.Equal(t, int32(22), s.Previous.Bodies[0].X)

	x, y := interpolate(s.Previous, s.Snapshot, 0, 0.5)
	assert.Equal(t, 10.0, x, "respawn is drawn at the spawn, not blended from the exit")
	assert.Equal(t, 0.0, y)
}

func TestAdvanceSimulationHighTickRate(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry, err := factory.CreateSimulation(e, []*leveldata.Level{
		level("open", geom.Point{}, geom.R(5000, 5000, 16, 16)),
	}, factory.SimulationOptions{
		Params:   sim.DefaultParams(),
		TickRate: 600,
		MaxSteps: cfg.Sim.MaxStepsPerFrame,
	})
	require.NoError(t, err)
	s := components.Simulation.Get(entry)

	frame := time.Second / 60
	total := 0
	for i := 0; i < 60; i++ {
		total += AdvanceSimulation(e, s, frame, sim.Input{})
	}
	want := int(60 * frame / s.Driver.Step)
	assert.Equal(t, 600, want)
	assert.Equal(t, want, total)
	assert.Equal(t, uint64(want), s.World.Tick)
}

func TestFrameDurationMatchesTicks(t *testing.T) {
	e, s := newTestSimulation(t, level("open", geom.Point{}, geom.R(5000, 5000, 16, 16)))

	tps := ebiten.TPS()
	require.Equal(t, time.Second/time.Duration(tps), frameDuration())

	total := 0
	for i := 0; i < tps; i++ {
		total += AdvanceSimulation(e, s, frameDuration(), sim.Input{})
	}
	assert.Equal(t, int(time.Duration(tps)*frameDuration()/s.Driver.Step), total)
}
