package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/engine2d/config"
	"github.com/automoto/engine2d/shared/leveldata"
)

var (
	//go:embed all:levels all:demo
	assetFS embed.FS
)

// FS exposes the embedded level files.
func FS() fs.FS {
	return assetFS
}

// LoadLevels loads the level sequence from config.Levels.Dir.
func LoadLevels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAllLevels(assetFS, config.Levels.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load levels from %s: %w", config.Levels.Dir, err)
	}
	return levels, nil
}

// LoadDemo loads the AABB demo pack from config.Levels.Demo.
func LoadDemo() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadPack(assetFS, config.Levels.Demo)
	if err != nil {
		return nil, err
	}
	if err := leveldata.ValidateAll(levels); err != nil {
		return nil, fmt.Errorf("demo pack %s: %w", config.Levels.Demo, err)
	}
	return levels, nil
}

// MustLoadLevels is LoadLevels for startup code that cannot continue without levels.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
