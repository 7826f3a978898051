package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/fonts"
	"github.com/automoto/engine2d/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() (*Game, error) {
	for _, f := range []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Regular, goregular.TTF, 12},
		{fonts.Bold, gobold.TTF, 20},
		{fonts.Title, gobold.TTF, 32},
		{fonts.Small, goregular.TTF, 10},
	} {
		if err := fonts.LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return nil, err
		}
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, scenes.SourceLevels)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "engine2d",
	})
	log.SetDefault(logger)

	used, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config", "error", err)
	}
	log.SetLevel(config.LogLevel())
	if used != "" {
		log.Info("loaded config", "path", used)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game, err := NewGame()
	if err != nil {
		log.Fatal("could not start", "error", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
