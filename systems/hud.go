package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 10
	hudPadding = 4
)

var hudBackground = color.RGBA{0, 0, 0, 140}

// DrawHUD renders the level indicator in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s, ok := getSimulation(ecs)
	if !ok {
		return
	}

	label := fmt.Sprintf("Level %d/%d  %s", s.Snapshot.Level+1, len(s.World.Levels), s.Snapshot.LevelName)
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, label)

	vector.FillRect(screen,
		float32(hudMargin-hudPadding), float32(hudMargin-hudPadding),
		float32(bounds.Dx()+2*hudPadding), float32(bounds.Dy()+2*hudPadding),
		hudBackground, false)
	text.Draw(screen, label, face, hudMargin, hudMargin-bounds.Min.Y, config.White)
}
