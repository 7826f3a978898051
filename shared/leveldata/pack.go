package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/tilemap"
	"gopkg.in/yaml.v3"
)

// Tile characters in a YAML pack. Any other character is a non-solid tile.
const (
	solidChar = '#'
	emptyChar = '.'
)

type packFile struct {
	Levels []levelDoc `yaml:"levels"`
}

type levelDoc struct {
	Name        string    `yaml:"name"`
	Width       int32     `yaml:"width"`
	Height      int32     `yaml:"height"`
	TileSize    int32     `yaml:"tileSize"`
	Origin      []int     `yaml:"origin"`
	OutOfBounds string    `yaml:"outOfBounds"`
	Tiles       []string  `yaml:"tiles"`
	Walls       [][]int   `yaml:"walls"`
	Exit        []int     `yaml:"exit"`
	Spawn       []int     `yaml:"spawn"`
	Bodies      []bodyDoc `yaml:"bodies"`
}

type bodyDoc struct {
	Rect   []int `yaml:"rect"`
	Patrol []int `yaml:"patrol"`
}

// LoadPack reads a YAML level pack from fsys.
func LoadPack(fsys fs.FS, packPath string) ([]*Level, error) {
	data, err := fs.ReadFile(fsys, packPath)
	if err != nil {
		return nil, fmt.Errorf("reading pack %s: %w", packPath, err)
	}
	stem := strings.TrimSuffix(path.Base(packPath), path.Ext(packPath))
	levels, err := ParsePack(data, stem)
	if err != nil {
		return nil, fmt.Errorf("parsing pack %s: %w", packPath, err)
	}
	return levels, nil
}

// ParsePack decodes a YAML level pack. Unnamed levels are called
// "<stem>-<n>", counting from 1.
//
//	levels:
//	  - name: maze-1
//	    tileSize: 16
//	    tiles: ["####", "#..#", "####"]
//	    walls: [[0, 534, 700, 16]]
//	    exit: [624, 500, 16, 16]
//	    spawn: [32, 32]
//	    bodies:
//	      - rect: [200, 64, 16, 16]
//	        patrol: [2, 0]
func ParsePack(data []byte, stem string) ([]*Level, error) {
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}

	levels := make([]*Level, 0, len(pf.Levels))
	for i, doc := range pf.Levels {
		name := doc.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", stem, i+1)
		}
		level, err := doc.level(name)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", name, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func (d levelDoc) level(name string) (*Level, error) {
	level := &Level{Name: name, Width: d.Width, Height: d.Height}

	for i, w := range d.Walls {
		r, err := rectOf(w)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		level.Obstacles = append(level.Obstacles, r)
	}

	if d.Exit != nil {
		r, err := rectOf(d.Exit)
		if err != nil {
			return nil, fmt.Errorf("exit: %w", err)
		}
		level.Exit = &r
	}

	if d.Spawn != nil {
		p, err := pointOf(d.Spawn)
		if err != nil {
			return nil, fmt.Errorf("spawn: %w", err)
		}
		level.Spawn = p
	}

	for i, b := range d.Bodies {
		r, err := rectOf(b.Rect)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		spawn := BodySpawn{X: r.X, Y: r.Y, W: r.W, H: r.H}
		if b.Patrol != nil {
			v, err := pointOf(b.Patrol)
			if err != nil {
				return nil, fmt.Errorf("body %d patrol: %w", i, err)
			}
			spawn.PatrolVX, spawn.PatrolVY = v.X, v.Y
		}
		level.Bodies = append(level.Bodies, spawn)
	}

	if len(d.Tiles) > 0 {
		grid, err := d.grid()
		if err != nil {
			return nil, err
		}
		level.Grid = grid
		if level.Width == 0 && level.Height == 0 {
			b := grid.WorldBounds()
			level.Width, level.Height = int32(b.W), int32(b.H)
		}
	}

	return level, nil
}

var packTileset = &tilemap.Tileset{Tiles: []tilemap.Tile{{Solid: false}, {Solid: true}}}

func (d levelDoc) grid() (*tilemap.Grid, error) {
	cols := len(d.Tiles[0])
	cells := make([]int, 0, cols*len(d.Tiles))
	for row, line := range d.Tiles {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: tile row %d has %d columns, want %d", tilemap.ErrBadGrid, row, len(line), cols)
		}
		for _, ch := range []byte(line) {
			switch ch {
			case solidChar:
				cells = append(cells, 1)
			case emptyChar, ' ':
				cells = append(cells, tilemap.Empty)
			default:
				cells = append(cells, 0)
			}
		}
	}

	var origin geom.Point
	if d.Origin != nil {
		p, err := pointOf(d.Origin)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		origin = p
	}

	grid, err := tilemap.NewGrid(origin, cols, len(d.Tiles), d.TileSize, d.TileSize, packTileset, cells)
	if err != nil {
		return nil, err
	}
	if d.OutOfBounds == "empty" {
		grid.OutOfBounds = tilemap.OutOfBoundsEmpty
	}
	return grid, nil
}

func rectOf(v []int) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, fmt.Errorf("want [x, y, w, h], got %v", v)
	}
	return geom.NewRect(v[0], v[1], v[2], v[3])
}

func pointOf(v []int) (geom.Point, error) {
	if len(v) != 2 {
		return geom.Point{}, fmt.Errorf("want [x, y], got %v", v)
	}
	r, err := geom.NewRect(v[0], v[1], 0, 0)
	if err != nil {
		return geom.Point{}, err
	}
	return r.Origin(), nil
}
