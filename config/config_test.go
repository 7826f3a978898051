package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/engine2d/shared/sim"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot restores the globals touched by a test.
func snapshot(t *testing.T) {
	t.Helper()
	c, physics, simCfg, levels, camera, debug, logCfg := *C, Physics, Sim, Levels, Camera, Debug, Log
	t.Cleanup(func() {
		C = &c
		Physics, Sim, Levels, Camera, Debug, Log = physics, simCfg, levels, camera, debug, logCfg
	})
}

func TestApplyOverlaysPartially(t *testing.T) {
	snapshot(t)

	err := Apply([]byte(`
physics:
  mode: platformer
  jumpSpeed: 12
sim:
  endPolicy: clamp
window:
  title: custom
`))
	require.NoError(t, err)

	assert.Equal(t, "platformer", Physics.Mode)
	assert.Equal(t, int32(12), Physics.JumpSpeed)
	assert.Equal(t, int32(2), Physics.Speed, "unset keys keep defaults")
	assert.Equal(t, 60, Sim.TickRate)
	assert.Equal(t, "custom", C.Title)
	assert.Equal(t, 640, C.Width)

	params, err := SimParams()
	require.NoError(t, err)
	assert.Equal(t, sim.ModePlatformer, params.Mode)
	assert.Equal(t, sim.EndClamp, params.End)
	assert.Equal(t, int32(12), params.JumpSpeed)
	assert.Equal(t, uint32(16), params.PlayerW)
}

func TestApplyRejectsBadYAML(t *testing.T) {
	snapshot(t)

	err := Apply([]byte("physics: [not, a, map"))
	assert.Error(t, err)
	assert.Equal(t, "topdown", Physics.Mode)
}

func TestSimParamsErrors(t *testing.T) {
	snapshot(t)

	Physics.Mode = "isometric"
	_, err := SimParams()
	assert.Error(t, err)

	Physics.Mode = "topdown"
	Physics.PlayerWidth = 0
	_, err = SimParams()
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "engine2d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\ndebug:\n  enabled: true\n"), 0o644))

	used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.True(t, Debug.Enabled)
	assert.Equal(t, log.DebugLevel, LogLevel())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogLevelFallback(t *testing.T) {
	snapshot(t)

	Log.Level = "chatty"
	assert.Equal(t, log.InfoLevel, LogLevel())
}
