package systems

import (
	"fmt"

	"github.com/automoto/engine2d/components"
	cfg "github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateFinished handles input on the all-levels-complete overlay.
// Select calls onDone; Restart replays the last level.
func NewUpdateFinished(onDone func()) ecs.System {
	return func(e *ecs.ECS) {
		finished := GetOrCreateFinished(e)
		if !finished.IsFinished {
			return
		}

		input := getOrCreateInput(e)
		switch {
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			onDone()
		case GetAction(input, cfg.ActionRestart).JustPressed:
			RestartSimulation(e)
		}
	}
}

// DrawFinished renders the all-levels-complete overlay
func DrawFinished(e *ecs.ECS, screen *ebiten.Image) {
	finished := GetOrCreateFinished(e)
	if !finished.IsFinished {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Finished.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Finished.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height*0.4), cfg.Finished.TitleColor)

	msgFont := fonts.Bold.Get()
	msg := fmt.Sprintf("%d steps", finished.Ticks)
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height*0.55), cfg.Finished.TextColor)

	hintFont := fonts.Small.Get()
	input := getOrCreateInput(e)
	hint := getFinishedHint(input.LastInputMethod)
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height*0.7), cfg.Finished.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// getFinishedHint returns the hint matching the last used device
func getFinishedHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to return to the title"
	case components.InputXbox:
		return "Press A to return to the title"
	}
	return cfg.Finished.ContinueHint
}

// GetOrCreateFinished returns the singleton Finished component, creating if needed
func GetOrCreateFinished(e *ecs.ECS) *components.FinishedData {
	if _, ok := components.Finished.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Finished))
	}

	ent, _ := components.Finished.First(e.World)
	return components.Finished.Get(ent)
}

// IsFinished reports whether the run has ended.
func IsFinished(e *ecs.ECS) bool {
	return GetOrCreateFinished(e).IsFinished
}

// WithGameplayChecks wraps a system to skip execution once the run is finished
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsFinished(e) {
			return
		}
		system(e)
	}
}
