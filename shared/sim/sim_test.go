package sim

import (
	"testing"

	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var farExit = geom.R(5000, 5000, 16, 16)

func testLevel(name string, spawn geom.Point, exit geom.Rect, walls ...geom.Rect) *leveldata.Level {
	return &leveldata.Level{Name: name, Spawn: spawn, Exit: &exit, Obstacles: walls}
}

func stepN(w *World, n int, in Input) {
	for i := 0; i < n; i++ {
		Step(w, in)
	}
}

func TestNewWorldValidates(t *testing.T) {
	_, err := NewWorld(nil, DefaultParams())
	assert.ErrorIs(t, err, leveldata.ErrNoLevels)

	_, err = NewWorld([]*leveldata.Level{{Name: "no exit"}}, DefaultParams())
	assert.ErrorIs(t, err, leveldata.ErrNoExit)
}

func TestPlayerRestsOnWall(t *testing.T) {
	w, err := NewWorld([]*leveldata.Level{
		testLevel("floor", geom.Point{X: 170, Y: 500}, farExit, geom.R(0, 534, 700, 16)),
	}, DefaultParams())
	require.NoError(t, err)

	stepN(w, 9, Input{Down: true})
	assert.Equal(t, int32(518), w.Player().Rect.Y)

	stepN(w, 11, Input{Down: true})
	assert.Equal(t, int32(518), w.Player().Rect.Y)
	assert.Equal(t, int32(170), w.Player().Rect.X)
	assert.Equal(t, 0, w.Level, "touching an obstacle never changes the level")
	assert.Equal(t, InLevel, w.State)
	assert.Equal(t, uint64(20), w.Tick)
}

func TestExitAdvancesLevel(t *testing.T) {
	levels := []*leveldata.Level{
		testLevel("one", geom.Point{X: 22, Y: 0}, geom.R(40, 0, 16, 16)),
		testLevel("two", geom.Point{X: 100, Y: 100}, farExit),
	}
	w, err := NewWorld(levels, DefaultParams())
	require.NoError(t, err)

	var entered []int
	w.OnEnter(func(level int) { entered = append(entered, level) })

	Step(w, Input{Right: true})
	assert.Equal(t, 1, w.Level)
	assert.Equal(t, InLevel, w.State)
	assert.Equal(t, geom.R(100, 100, 16, 16), w.Player().Rect)
	assert.Zero(t, w.Player().VX)
	assert.Equal(t, []int{1}, entered)

	snap := w.Snapshot()
	assert.Equal(t, "two", snap.LevelName)
	assert.Equal(t, farExit, snap.Exit)
}

func TestEndPolicy(t *testing.T) {
	level := func() []*leveldata.Level {
		return []*leveldata.Level{testLevel("last", geom.Point{X: 22, Y: 0}, geom.R(40, 0, 16, 16))}
	}

	t.Run("finish", func(t *testing.T) {
		w, err := NewWorld(level(), DefaultParams())
		require.NoError(t, err)

		Step(w, Input{Right: true})
		assert.Equal(t, Finished, w.State)
		tick, rect := w.Tick, w.Player().Rect

		stepN(w, 5, Input{Right: true})
		assert.Equal(t, tick, w.Tick, "finished worlds do not step")
		assert.Equal(t, rect, w.Player().Rect)
	})

	t.Run("clamp", func(t *testing.T) {
		params := DefaultParams()
		params.End = EndClamp
		w, err := NewWorld(level(), params)
		require.NoError(t, err)

		Step(w, Input{Right: true})
		assert.Equal(t, InLevel, w.State)
		assert.Equal(t, 0, w.Level)
		assert.Equal(t, geom.R(22, 0, 16, 16), w.Player().Rect)
	})
}

func TestRestart(t *testing.T) {
	w, err := NewWorld([]*leveldata.Level{
		testLevel("last", geom.Point{X: 22, Y: 0}, geom.R(40, 0, 16, 16)),
	}, DefaultParams())
	require.NoError(t, err)

	var entered []int
	w.OnEnter(func(level int) { entered = append(entered, level) })

	Step(w, Input{Right: true})
	require.Equal(t, Finished, w.State)

	w.Restart()
	assert.Equal(t, InLevel, w.State)
	assert.Equal(t, geom.R(22, 0, 16, 16), w.Player().Rect)
	assert.Equal(t, []int{0}, entered)

	Step(w, Input{Down: true})
	assert.Equal(t, int32(2), w.Player().Rect.Y, "stepping resumes")
}

func TestPatrolTurnsAround(t *testing.T) {
	l := testLevel("patrol", geom.Point{X: 0, Y: 200}, farExit, geom.R(80, 0, 10, 16))
	l.Bodies = []leveldata.BodySpawn{{X: 50, Y: 0, W: 16, H: 16, PatrolVX: 4}}
	w, err := NewWorld([]*leveldata.Level{l}, DefaultParams())
	require.NoError(t, err)

	stepN(w, 4, Input{})
	assert.Equal(t, int32(64), w.Bodies[1].Rect.X)
	assert.Equal(t, int32(-4), w.Bodies[1].VX)

	Step(w, Input{})
	assert.Equal(t, int32(60), w.Bodies[1].Rect.X)
}

func TestPlatformerGravityAndJump(t *testing.T) {
	params := DefaultParams()
	params.Mode = ModePlatformer
	w, err := NewWorld([]*leveldata.Level{
		testLevel("ground", geom.Point{X: 20, Y: 70}, farExit, geom.R(0, 100, 200, 10)),
	}, params)
	require.NoError(t, err)

	stepN(w, 10, Input{})
	assert.Equal(t, int32(84), w.Player().Rect.Y)
	assert.True(t, w.Grounded())
	assert.True(t, w.Snapshot().Grounded)

	Step(w, Input{Up: true})
	assert.Equal(t, int32(75), w.Player().Rect.Y)
	assert.Equal(t, int32(-9), w.Player().VY)
	assert.False(t, w.Grounded())

	Step(w, Input{Up: true})
	assert.Equal(t, int32(67), w.Player().Rect.Y, "no double jump")

	Step(w, Input{Right: true})
	assert.Equal(t, params.Speed, w.Player().VX)
	Step(w, Input{})
	assert.Zero(t, w.Player().VX)
}

func TestPlatformerCornerTouchIsNotGround(t *testing.T) {
	params := DefaultParams()
	params.Mode = ModePlatformer
	w, err := NewWorld([]*leveldata.Level{
		testLevel("ledge", geom.Point{X: 32, Y: 83}, farExit, geom.R(0, 100, 32, 16)),
	}, params)
	require.NoError(t, err)

	Step(w, Input{})
	require.Equal(t, geom.R(32, 84, 16, 16), w.Player().Rect, "player falls past the ledge corner")
	assert.False(t, w.Grounded())
	assert.Equal(t, int32(1), w.Player().VY)

	Step(w, Input{Up: true})
	assert.Equal(t, int32(2), w.Player().VY, "no jump in mid-air")
	assert.Equal(t, int32(86), w.Player().Rect.Y)
}

func TestEntriesCountRespawns(t *testing.T) {
	params := DefaultParams()
	params.End = EndClamp
	w, err := NewWorld([]*leveldata.Level{
		testLevel("only", geom.Point{X: 22, Y: 0}, geom.R(40, 0, 16, 16)),
	}, params)
	require.NoError(t, err)
	before := w.Snapshot()

	Step(w, Input{Right: true})
	after := w.Snapshot()
	assert.Equal(t, before.Level, after.Level)
	assert.Equal(t, before.Entries+1, after.Entries)

	w.Restart()
	assert.Equal(t, after.Entries+1, w.Snapshot().Entries)
	assert.Equal(t, w.Entries, w.Clone().Entries)
}

func scriptedRun(t *testing.T, params Params) *World {
	t.Helper()
	l := testLevel("maze", geom.Point{X: 32, Y: 32}, geom.R(300, 32, 16, 16),
		geom.R(0, 0, 320, 16), geom.R(0, 80, 320, 16), geom.R(150, 16, 16, 30))
	l.Bodies = []leveldata.BodySpawn{
		{X: 100, Y: 40, W: 12, H: 12, PatrolVX: 3, PatrolVY: 1},
		{X: 200, Y: 50, W: 12, H: 12, PatrolVX: -2},
	}
	w, err := NewWorld([]*leveldata.Level{l, testLevel("end", geom.Point{}, farExit)}, params)
	require.NoError(t, err)

	script := []Input{{Right: true}, {Right: true, Up: true}, {Down: true}, {Left: true}, {}}
	for i := 0; i < 300; i++ {
		Step(w, script[(i/7)%len(script)])
	}
	return w
}

func TestDeterministic(t *testing.T) {
	a := scriptedRun(t, DefaultParams())
	b := scriptedRun(t, DefaultParams())
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestSpatialBroadPhaseMatchesBruteForce(t *testing.T) {
	spatial := DefaultParams()
	spatial.SpatialCellSize = 16

	brute := scriptedRun(t, DefaultParams())
	indexed := scriptedRun(t, spatial)
	assert.Equal(t, brute.Snapshot(), indexed.Snapshot())
	assert.Equal(t, brute.Contacts(), indexed.Contacts())
}

func TestClone(t *testing.T) {
	w := scriptedRun(t, DefaultParams())
	c := w.Clone()
	assert.Equal(t, w.Snapshot(), c.Snapshot())

	in := Input{Down: true, Right: true}
	stepN(w, 10, in)
	stepN(c, 10, in)
	assert.Equal(t, w.Snapshot(), c.Snapshot())

	c.Bodies[0].Rect.X += 100
	assert.NotEqual(t, w.Player().Rect, c.Player().Rect)
}

func TestParseEnums(t *testing.T) {
	m, err := ParseMode("platformer")
	require.NoError(t, err)
	assert.Equal(t, ModePlatformer, m)
	assert.Equal(t, "platformer", m.String())

	_, err = ParseMode("isometric")
	assert.Error(t, err)

	p, err := ParseEndPolicy("clamp")
	require.NoError(t, err)
	assert.Equal(t, EndClamp, p)
	assert.Equal(t, "clamp", p.String())
	assert.Equal(t, "finished", Finished.String())
}
