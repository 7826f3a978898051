// Package leveldata loads level files shared between the client and the
// headless runner. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/tilemap"
)

var (
	ErrNegativeExtent = geom.ErrNegativeExtent
	ErrNoExit         = errors.New("level has no exit")
	ErrNoLevels       = errors.New("no levels")
)

// Level is one stage: static geometry, an exit and where things spawn.
// It is not modified once validated.
type Level struct {
	Name      string
	Width     int32
	Height    int32
	Obstacles []geom.Rect
	Exit      *geom.Rect
	Spawn     geom.Point
	Grid      *tilemap.Grid
	Bodies    []BodySpawn
}

// BodySpawn places an extra body that patrols at constant velocity.
type BodySpawn struct {
	X, Y     int32
	W, H     uint32
	PatrolVX int32
	PatrolVY int32
}

// Rect returns the body's spawn rect.
func (b BodySpawn) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Validate checks that the level can be simulated.
func (l *Level) Validate() error {
	if l.Exit == nil {
		return fmt.Errorf("level %q: %w", l.Name, ErrNoExit)
	}
	if l.Grid != nil {
		if err := l.Grid.Validate(); err != nil {
			return fmt.Errorf("level %q: %w", l.Name, err)
		}
	}
	return nil
}

// ValidateAll validates every level and rejects an empty pack.
func ValidateAll(levels []*Level) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	for i, l := range levels {
		if l == nil {
			return fmt.Errorf("level %d: %w", i, ErrNoLevels)
		}
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

