package systems

import (
	"image/color"

	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the tile grid, walls and exit of the current level.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(config.Colors.Background)

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	s, ok := getSimulation(ecs)
	if !ok {
		return
	}
	level := s.World.Current()

	if level.Grid != nil {
		view := viewport(screen, camX, camY)
		drawTiles(screen, level.Grid, view, camX, camY)
	}
	for _, w := range level.Obstacles {
		fillRect(screen, w, camX, camY, config.Colors.Wall)
	}
	fillRect(screen, s.Snapshot.Exit, camX, camY, config.Colors.Exit)
}

// drawTiles draws the cells visible in view. Empty cells are skipped.
func drawTiles(screen *ebiten.Image, g *tilemap.Grid, view geom.Rect, camX, camY float64) {
	c0, r0, c1, r1 := g.CellsCovering(view)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, g.Cols-1), min(r1, g.Rows-1)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if g.TileAt(col, row) == tilemap.Empty {
				continue
			}
			clr := config.Colors.TileSoft
			if g.SolidAt(col, row) {
				clr = config.Colors.Tile
			}
			fillRect(screen, g.Bounds(col, row), camX, camY, clr)
		}
	}
}

// viewport is the world-space rectangle currently on screen.
func viewport(screen *ebiten.Image, camX, camY float64) geom.Rect {
	b := screen.Bounds()
	return geom.R(int32(-camX), int32(-camY), uint32(b.Dx()), uint32(b.Dy()))
}

func fillRect(screen *ebiten.Image, r geom.Rect, camX, camY float64, clr color.Color) {
	if r.W == 0 || r.H == 0 {
		return
	}
	vector.FillRect(screen,
		float32(float64(r.X)+camX), float32(float64(r.Y)+camY),
		float32(r.W), float32(r.H), clr, false)
}

// strokeRect draws a one pixel outline inside r.
func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
