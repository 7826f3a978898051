package factory

import (
	"github.com/automoto/engine2d/archetypes"
	"github.com/automoto/engine2d/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera already looking at pos so the first frame
// does not pan in from the origin.
func CreateCamera(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: pos})
	return camera
}
