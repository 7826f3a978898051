package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/fonts"
	"github.com/automoto/engine2d/shared/collision"
	"github.com/automoto/engine2d/shared/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

var outlineColor = color.RGBA{0, 255, 255, 255}

// DrawDebug outlines bodies, marks what each body touched in the last step
// and, when enabled, shades the broad phase cells in use.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	s, ok := getSimulation(ecs)
	if !ok {
		return
	}
	w := s.World

	if idx, ok := w.BroadPhase().(*collision.SpatialIndex); ok && settings.ShowCells {
		drawCells(screen, idx, camX, camY)
	}

	for _, b := range w.Bodies {
		strokeRect(screen, float64(b.Rect.X)+camX, float64(b.Rect.Y)+camY, float64(b.Rect.W), float64(b.Rect.H), outlineColor)
	}

	for _, c := range w.Contacts() {
		r, ok := w.Statics().Bounds(c.B, w.Bodies)
		if !ok || r.W == 0 || r.H == 0 {
			continue
		}
		strokeRect(screen, float64(r.X)+camX, float64(r.Y)+camY, float64(r.W), float64(r.H), config.Colors.Contact)
	}

	res := w.LastResult()
	stats := fmt.Sprintf("tick %d  bodies %d  contacts %d  applied %d  stale %d  grounded %v",
		w.Tick, len(w.Bodies), len(w.Contacts()), res.Applied, res.Stale, w.Grounded())
	text.Draw(screen, stats, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, config.White)
}

// drawCells shades every bucket that holds at least one object.
func drawCells(screen *ebiten.Image, idx *collision.SpatialIndex, camX, camY float64) {
	space, origin := idx.Space()
	if space == nil {
		return
	}
	cell := idx.CellSize
	seen := make(map[[2]int]bool)
	for _, obj := range space.Objects() {
		x0, y0 := int(obj.X)/cell, int(obj.Y)/cell
		x1, y1 := int(obj.X+obj.W-1)/cell, int(obj.Y+obj.H-1)/cell
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				k := [2]int{cx, cy}
				if seen[k] {
					continue
				}
				seen[k] = true
				r := geom.R(origin.X+int32(cx*cell), origin.Y+int32(cy*cell), uint32(cell), uint32(cell))
				fillRect(screen, r, camX, camY, config.Colors.Grid)
			}
		}
	}
}
