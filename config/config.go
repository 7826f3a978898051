package config

import (
	"fmt"
	"image/color"

	"github.com/automoto/engine2d/shared/sim"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig holds movement tuning, in units per step
type PhysicsConfig struct {
	Mode         string `yaml:"mode"` // "topdown" or "platformer"
	Speed        int32  `yaml:"speed"`
	Gravity      int32  `yaml:"gravity"`
	JumpSpeed    int32  `yaml:"jumpSpeed"`
	MaxFall      int32  `yaml:"maxFall"`
	Friction     int32  `yaml:"friction"`
	PlayerWidth  uint32 `yaml:"playerWidth"`
	PlayerHeight uint32 `yaml:"playerHeight"`
}

// SimConfig controls the fixed-step driver and the collision broad phase
type SimConfig struct {
	TickRate         int    `yaml:"tickRate"`
	MaxStepsPerFrame int    `yaml:"maxStepsPerFrame"`
	EndPolicy        string `yaml:"endPolicy"` // "finish" or "clamp"
	SpatialCellSize  int    `yaml:"spatialCellSize"`
}

// LevelsConfig says where level files live
type LevelsConfig struct {
	Dir  string `yaml:"dir"`
	Demo string `yaml:"demo"`
}

// CameraConfig contains camera follow and level pan settings
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"`
	PanSeconds      float32 `yaml:"panSeconds"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Enabled   bool `yaml:"enabled"`
	SkipMenu  bool `yaml:"skipMenu"`
	ShowCells bool `yaml:"showCells"`
}

// LogConfig sets the logger verbosity
type LogConfig struct {
	Level string `yaml:"level"`
}

// ColorsConfig is the palette used to draw a level
type ColorsConfig struct {
	Background color.RGBA
	Tile       color.RGBA
	TileSoft   color.RGBA
	Wall       color.RGBA
	Exit       color.RGBA
	Player     color.RGBA
	Body       color.RGBA
	Contact    color.RGBA
	Grid       color.RGBA
}

// MenuConfig contains title screen configuration
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonText      color.RGBA
	Title           string
	Subtitle        string
}

// FinishedConfig contains the end-of-run overlay text
type FinishedConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	ContinueHint string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Sim SimConfig
var Levels LevelsConfig
var Camera CameraConfig
var Debug DebugConfig
var Log LogConfig
var Colors ColorsConfig
var Menu MenuConfig
var Finished FinishedConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "engine2d",
	}

	Physics = PhysicsConfig{
		Mode:         "topdown",
		Speed:        2,
		Gravity:      1,
		JumpSpeed:    10,
		MaxFall:      8,
		Friction:     2,
		PlayerWidth:  16,
		PlayerHeight: 16,
	}

	Sim = SimConfig{
		TickRate:         60,
		MaxStepsPerFrame: 0, // no cap; a positive value spreads catch-up over frames
		EndPolicy:        "finish",
		SpatialCellSize:  16,
	}

	Levels = LevelsConfig{
		Dir:  "levels",
		Demo: "demo/aabb.yaml",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		PanSeconds:      0.6,
	}

	Debug = DebugConfig{}

	Log = LogConfig{Level: "info"}

	Colors = ColorsConfig{
		Background: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		Tile:       color.RGBA{R: 90, G: 90, B: 110, A: 255},
		TileSoft:   color.RGBA{R: 40, G: 50, B: 80, A: 255},
		Wall:       DarkBlue,
		Exit:       BrightGreen,
		Player:     BrightOrange,
		Body:       color.RGBA{R: 200, G: 60, B: 60, A: 255},
		Contact:    Magenta,
		Grid:       color.RGBA{R: 255, G: 255, B: 255, A: 30},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   BrightOrange,
		ButtonText:      White,
		Title:           "ENGINE2D",
		Subtitle:        "AABB collision playground",
	}

	Finished = FinishedConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		Title:        "All levels complete!",
		ContinueHint: "Press ENTER to return to the title",
	}
}

// SimParams converts the physics and sim settings into simulation params.
func SimParams() (sim.Params, error) {
	mode, err := sim.ParseMode(Physics.Mode)
	if err != nil {
		return sim.Params{}, err
	}
	end, err := sim.ParseEndPolicy(Sim.EndPolicy)
	if err != nil {
		return sim.Params{}, err
	}
	if Physics.PlayerWidth == 0 || Physics.PlayerHeight == 0 {
		return sim.Params{}, fmt.Errorf("player size %dx%d must be positive", Physics.PlayerWidth, Physics.PlayerHeight)
	}
	return sim.Params{
		Mode:            mode,
		Speed:           Physics.Speed,
		Gravity:         Physics.Gravity,
		JumpSpeed:       Physics.JumpSpeed,
		MaxFall:         Physics.MaxFall,
		Friction:        Physics.Friction,
		PlayerW:         Physics.PlayerWidth,
		PlayerH:         Physics.PlayerHeight,
		End:             end,
		SpatialCellSize: Sim.SpatialCellSize,
	}, nil
}

// LogLevel parses Log.Level, falling back to info.
func LogLevel() log.Level {
	lvl, err := log.ParseLevel(Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
