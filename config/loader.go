package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout. Sections missing from a file keep their
// current values.
type fileConfig struct {
	Window  Config        `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Sim     SimConfig     `yaml:"sim"`
	Levels  LevelsConfig  `yaml:"levels"`
	Camera  CameraConfig  `yaml:"camera"`
	Debug   DebugConfig   `yaml:"debug"`
	Log     LogConfig     `yaml:"log"`
}

// Load overlays a YAML file onto the built-in defaults and returns the path
// it used, or "" when none was found.
// Search order: customPath -> ~/.engine2d/config.yaml -> ./configs/engine2d.yaml -> built-in defaults
func Load(customPath string) (string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := Apply(data); err == nil {
				return userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "engine2d.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if err := Apply(data); err == nil {
			return local, nil
		}
	}

	return "", nil
}

// Apply decodes data over the current global configuration. Nothing is
// changed when data does not parse.
func Apply(data []byte) error {
	fc := fileConfig{
		Window:  *C,
		Physics: Physics,
		Sim:     Sim,
		Levels:  Levels,
		Camera:  Camera,
		Debug:   Debug,
		Log:     Log,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	window := fc.Window
	C = &window
	Physics = fc.Physics
	Sim = fc.Sim
	Levels = fc.Levels
	Camera = fc.Camera
	Debug = fc.Debug
	Log = fc.Log
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".engine2d", filename)
}
