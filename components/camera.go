package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	// PanX and PanY glide the camera to the next level's spawn. Follow
	// smoothing is suspended while they run.
	PanX, PanY *gween.Tween
}

// Panning reports whether a level pan is still running.
func (c *CameraData) Panning() bool {
	return c.PanX != nil
}

var Camera = donburi.NewComponentType[CameraData]()
