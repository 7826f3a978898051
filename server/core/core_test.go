package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/engine2d/shared/leveldata"
	"github.com/automoto/engine2d/shared/sim"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(os.Stderr)

func init() {
	quiet.SetLevel(log.ErrorLevel)
}

func newWorld(t *testing.T) *sim.World {
	t.Helper()
	levels, err := LoadLevels(filepath.Join("testdata", "levels"))
	require.NoError(t, err)
	w, err := sim.NewWorld(levels, sim.DefaultParams())
	require.NoError(t, err)
	return w
}

func TestParseScript(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "right.yaml"))
	require.NoError(t, err)

	s, err := ParseScript(data)
	require.NoError(t, err)
	assert.Equal(t, 100, s.Len())
	assert.Equal(t, sim.Input{Right: true}, s.Input(0))
	assert.Equal(t, sim.Input{}, s.Input(10))
	assert.Equal(t, sim.Input{Right: true, Down: true}, s.Input(99))
	assert.Equal(t, sim.Input{}, s.Input(100))
	assert.Equal(t, sim.Input{}, s.Input(-1))
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "segments: [{steps: 1, keys: [fire]}]"},
		{"negative", "segments: [{steps: -1}]"},
		{"bad yaml", "segments: {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	_, err := ParseScript([]byte("segments: [{steps: 0, keys: [left]}]"))
	assert.ErrorIs(t, err, ErrEmptyScript)
}

func TestRunFastFinishes(t *testing.T) {
	script, err := Hold(100, "right")
	require.NoError(t, err)

	sum := NewGameLoop(newWorld(t), script, 60, quiet).RunFast()
	assert.Equal(t, uint64(44), sum.Steps)
	assert.Equal(t, sim.Finished, sum.State)
	assert.Equal(t, "second", sum.LevelName)
	assert.Equal(t, 1, sum.Transitions)
	assert.Equal(t, int32(44), sum.Player.X)
}

func TestRunMatchesRunFast(t *testing.T) {
	script, err := Hold(20, "right", "down")
	require.NoError(t, err)

	fast := NewGameLoop(newWorld(t), script, 1000, quiet).RunFast()
	timed := NewGameLoop(newWorld(t), script, 1000, quiet).Run(context.Background())

	fast.Elapsed, timed.Elapsed = 0, 0
	assert.Equal(t, fast, timed)
	assert.Equal(t, uint64(20), timed.Steps)
	assert.Equal(t, int32(24), timed.Player.Y, "resting on the wall")
}

func TestRunCancelled(t *testing.T) {
	script, err := Hold(1_000_000, "right")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum := NewGameLoop(newWorld(t), script, 60, quiet).Run(ctx)
	assert.Less(t, sum.Steps, uint64(script.Len()))
	assert.Equal(t, sim.InLevel, sum.State)

	loop := NewGameLoop(newWorld(t), script, 60, quiet)
	loop.Stop()
	sum = loop.Run(context.Background())
	assert.Equal(t, sim.InLevel, sum.State)
}

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels(filepath.Join("testdata", "levels", "corridor.yaml"))
	require.NoError(t, err)
	assert.Len(t, levels, 2)

	_, err = LoadLevels(filepath.Join("testdata", "right.yaml"))
	assert.ErrorIs(t, err, leveldata.ErrNoLevels)

	_, err = LoadLevels(filepath.Join("testdata", "missing"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(bad, []byte("{}"), 0o644))
	_, err = LoadLevels(bad)
	assert.Error(t, err)
}
