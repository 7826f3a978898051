package assets

import (
	"testing"

	"github.com/automoto/engine2d/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, err := LoadLevels()
	require.NoError(t, err)

	var names []string
	for _, l := range levels {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"castle", "02-maze", "hall"}, names)

	maze := levels[1]
	require.NotNil(t, maze.Grid)
	assert.Equal(t, int32(480), maze.Width)
	assert.Len(t, maze.Bodies, 2)
}

func TestEmbeddedLevelsPlay(t *testing.T) {
	levels := MustLoadLevels()
	w, err := sim.NewWorld(levels, sim.DefaultParams())
	require.NoError(t, err)

	spawn := w.Player().Rect

	// An idle player is never shoved by the patrol: the lower index keeps
	// the smaller half of an odd split.
	for i := 0; i < 600; i++ {
		sim.Step(w, sim.Input{})
	}
	assert.Equal(t, 0, w.Level)
	assert.Equal(t, spawn, w.Player().Rect)
	assert.NotZero(t, w.Bodies[1].VX, "patrol keeps moving")
}

func TestDemoPack(t *testing.T) {
	levels, err := LoadDemo()
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "aabb-demo", levels[0].Name)
	assert.Equal(t, int32(170), levels[0].Spawn.X)
}
