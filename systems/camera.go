package systems

import (
	"github.com/automoto/engine2d/components"
	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/shared/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	s, ok := getSimulation(e)
	if !ok || len(s.Snapshot.Bodies) == 0 {
		return
	}
	level := s.World.Current()
	target := cameraTarget(s.Snapshot.Bodies[0], level.Width, level.Height,
		float64(config.C.Width), float64(config.C.Height))

	if s.Entered {
		s.Entered = false
		startPan(camera, target, config.Camera.PanSeconds)
	}

	if camera.Panning() {
		stepPan(camera, float32(frameDuration().Seconds()))
		return
	}

	// Follow the player with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// cameraTarget centres on the player, constrained so the level always
// fills the screen. Levels smaller than the screen are centred instead.
// A zero level size means unbounded.
func cameraTarget(player geom.Rect, levelW, levelH int32, screenW, screenH float64) math.Vec2 {
	c := player.Center2()
	return math.Vec2{
		X: clampAxis(float64(c.X)/2, float64(levelW), screenW),
		Y: clampAxis(float64(c.Y)/2, float64(levelH), screenH),
	}
}

func clampAxis(v, level, screen float64) float64 {
	if level <= 0 {
		return v
	}
	if level <= screen {
		return level / 2
	}
	lo, hi := screen/2, level-screen/2
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// startPan glides the camera from where it is to target over seconds.
func startPan(camera *components.CameraData, target math.Vec2, seconds float32) {
	if seconds <= 0 {
		camera.Position = target
		camera.PanX, camera.PanY = nil, nil
		return
	}
	camera.PanX = gween.New(float32(camera.Position.X), float32(target.X), seconds, ease.InOutQuad)
	camera.PanY = gween.New(float32(camera.Position.Y), float32(target.Y), seconds, ease.InOutQuad)
}

func stepPan(camera *components.CameraData, dt float32) {
	x, done := camera.PanX.Update(dt)
	y, _ := camera.PanY.Update(dt)
	camera.Position.X, camera.Position.Y = float64(x), float64(y)
	if done {
		camera.PanX, camera.PanY = nil, nil
	}
}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// SnapCamera moves the camera straight to the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	s, ok := getSimulation(e)
	if !ok || len(s.Snapshot.Bodies) == 0 {
		return
	}
	level := s.World.Current()
	camera := components.Camera.Get(cameraEntry)
	camera.Position = cameraTarget(s.Snapshot.Bodies[0], level.Width, level.Height,
		float64(config.C.Width), float64(config.C.Height))
	camera.PanX, camera.PanY = nil, nil
	s.Entered = false
}
