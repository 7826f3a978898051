package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/tilemap"
	"github.com/lafriks/go-tiled"
)

// Names of the TMX layers and object groups a level is read from.
const (
	TilesLayer       = "tiles"
	WallsGroup       = "Walls"
	ExitGroup        = "Exit"
	PlayerSpawnGroup = "PlayerSpawn"
	BodiesGroup      = "Bodies"
)

// LoadTMX parses a Tiled map into a Level. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (headless runner).
//
// Tiles come from the "tiles" layer; a tileset tile is solid when its "solid"
// property is true. The layer property "outOfBounds" set to "empty" makes
// cells outside the map non-solid.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:  int32(levelMap.Width * levelMap.TileWidth),
		Height: int32(levelMap.Height * levelMap.TileHeight),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TilesLayer {
			continue
		}
		grid, err := gridFromLayer(levelMap, layer)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tmxPath, err)
		}
		level.Grid = grid
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: wall %d: %w", tmxPath, o.ID, err)
				}
				level.Obstacles = append(level.Obstacles, r)
			}
		case ExitGroup:
			if len(og.Objects) == 0 {
				continue
			}
			r, err := objectRect(og.Objects[0])
			if err != nil {
				return nil, fmt.Errorf("%s: exit: %w", tmxPath, err)
			}
			level.Exit = &r
		case PlayerSpawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			level.Spawn = geom.Point{X: int32(math.Round(o.X)), Y: int32(math.Round(o.Y))}
		case BodiesGroup:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: body %d: %w", tmxPath, o.ID, err)
				}
				level.Bodies = append(level.Bodies, BodySpawn{
					X:        r.X,
					Y:        r.Y,
					W:        r.W,
					H:        r.H,
					PatrolVX: int32(o.Properties.GetInt("patrolX")),
					PatrolVY: int32(o.Properties.GetInt("patrolY")),
				})
			}
		}
	}

	return level, nil
}

type tileKey struct {
	tileset *tiled.Tileset
	id      uint32
}

// gridFromLayer assigns each distinct tileset tile used by the layer its own
// tile type, in order of first appearance.
func gridFromLayer(levelMap *tiled.Map, layer *tiled.Layer) (*tilemap.Grid, error) {
	if len(layer.Tiles) != levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("%w: layer %q has %d tiles for %dx%d map",
			tilemap.ErrBadGrid, layer.Name, len(layer.Tiles), levelMap.Width, levelMap.Height)
	}

	tileset := &tilemap.Tileset{}
	types := map[tileKey]int{}
	cells := make([]int, len(layer.Tiles))

	for i, tile := range layer.Tiles {
		if tile.IsNil() {
			cells[i] = tilemap.Empty
			continue
		}
		key := tileKey{tileset: tile.Tileset, id: tile.ID}
		idx, ok := types[key]
		if !ok {
			var solid bool
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				solid = tilesetTile.Properties.GetBool("solid")
			}
			idx = len(tileset.Tiles)
			tileset.Tiles = append(tileset.Tiles, tilemap.Tile{Solid: solid})
			types[key] = idx
		}
		cells[i] = idx
	}

	grid, err := tilemap.NewGrid(geom.Point{}, levelMap.Width, levelMap.Height,
		int32(levelMap.TileWidth), int32(levelMap.TileHeight), tileset, cells)
	if err != nil {
		return nil, err
	}
	if layer.Properties.GetString("outOfBounds") == "empty" {
		grid.OutOfBounds = tilemap.OutOfBoundsEmpty
	}
	return grid, nil
}

func objectRect(o *tiled.Object) (geom.Rect, error) {
	return geom.NewRect(
		int(math.Round(o.X)), int(math.Round(o.Y)),
		int(math.Round(o.Width)), int(math.Round(o.Height)),
	)
}

// LoadAllLevels loads every .tmx and .yaml file in levelsDir within fsys.
// Files are read in name order; a YAML pack contributes its levels in the
// order it lists them. The result is validated.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	var matches []string
	for _, ext := range []string{"*.tmx", "*.yaml", "*.yml"} {
		pattern := path.Join(levelsDir, ext)
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevels)
	}
	sort.Strings(matches)

	var levels []*Level
	for _, p := range matches {
		if path.Ext(p) == ".tmx" {
			level, err := LoadTMX(fsys, p)
			if err != nil {
				return nil, err
			}
			levels = append(levels, level)
			continue
		}
		pack, err := LoadPack(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, pack...)
	}

	if err := ValidateAll(levels); err != nil {
		return nil, fmt.Errorf("%s: %w", levelsDir, err)
	}
	return levels, nil
}
