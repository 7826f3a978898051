package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/engine2d/shared/leveldata"
)

// LoadLevels reads levels from disk. path may be a directory, loaded in
// file name order, or a single .tmx or YAML pack file.
func LoadLevels(path string) ([]*leveldata.Level, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return leveldata.LoadAllLevels(os.DirFS(path), ".")
	}

	fsys := os.DirFS(filepath.Dir(path))
	name := filepath.Base(path)

	var levels []*leveldata.Level
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tmx":
		l, err := leveldata.LoadTMX(fsys, name)
		if err != nil {
			return nil, err
		}
		levels = []*leveldata.Level{l}
	case ".yaml", ".yml":
		levels, err = leveldata.LoadPack(fsys, name)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: unsupported level file type", path)
	}

	if err := leveldata.ValidateAll(levels); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levels, nil
}
