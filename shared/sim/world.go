// Package sim owns the simulated world: the level sequence, the bodies in
// the current level and the rules that move the player between levels.
// A World is advanced only through Step and is not safe for concurrent use.
package sim

import (
	"fmt"

	"github.com/automoto/engine2d/shared/collision"
	"github.com/automoto/engine2d/shared/geom"
	"github.com/automoto/engine2d/shared/leveldata"
)

// Mode selects how input becomes player velocity.
type Mode int

const (
	ModeTopDown Mode = iota
	ModePlatformer
)

func (m Mode) String() string {
	switch m {
	case ModeTopDown:
		return "topdown"
	case ModePlatformer:
		return "platformer"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "topdown", "":
		return ModeTopDown, nil
	case "platformer":
		return ModePlatformer, nil
	}
	return 0, fmt.Errorf("unknown movement mode %q", s)
}

// EndPolicy decides what happens when the player reaches the exit of the
// last level.
type EndPolicy int

const (
	// EndFinish enters the terminal Finished state.
	EndFinish EndPolicy = iota
	// EndClamp keeps the player on the last level at its spawn.
	EndClamp
)

func (p EndPolicy) String() string {
	if p == EndClamp {
		return "clamp"
	}
	return "finish"
}

// ParseEndPolicy is the inverse of EndPolicy.String.
func ParseEndPolicy(s string) (EndPolicy, error) {
	switch s {
	case "finish", "":
		return EndFinish, nil
	case "clamp":
		return EndClamp, nil
	}
	return 0, fmt.Errorf("unknown end policy %q", s)
}

// State is the level transition state.
type State int

const (
	InLevel State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "in-level"
}

// Params tune movement. Speeds are in units per step.
type Params struct {
	Mode      Mode
	Speed     int32
	Gravity   int32
	JumpSpeed int32
	MaxFall   int32
	Friction  int32
	PlayerW   uint32
	PlayerH   uint32
	End       EndPolicy
	// SpatialCellSize selects the resolv broad phase when positive and
	// brute force otherwise.
	SpatialCellSize int
}

// DefaultParams matches the prototypes: 16px player moving 2 units a step.
func DefaultParams() Params {
	return Params{
		Mode:      ModeTopDown,
		Speed:     2,
		Gravity:   1,
		JumpSpeed: 10,
		MaxFall:   8,
		Friction:  2,
		PlayerW:   16,
		PlayerH:   16,
		End:       EndFinish,
	}
}

// World is the complete simulation state. Body 0 is the player; the rest
// are the current level's patrolling bodies.
type World struct {
	Levels []*leveldata.Level
	Level  int
	State  State
	Tick   uint64
	Bodies []collision.Body
	Params Params
	// Entries counts level entries, including respawns on the same level.
	Entries uint64

	grounded bool
	statics  collision.Statics
	gatherer collision.Gatherer
	contacts []collision.Contact
	result   collision.Result
	entered  func(level int)
}

// NewWorld validates levels and places the player in the first one.
func NewWorld(levels []*leveldata.Level, params Params) (*World, error) {
	if err := leveldata.ValidateAll(levels); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	w := &World{Levels: levels, Params: params}
	w.gatherer.Broad = newBroadPhase(params.SpatialCellSize)
	w.enter(0)
	return w, nil
}

func newBroadPhase(cellSize int) collision.BroadPhase {
	if cellSize > 0 {
		return collision.NewSpatialIndex(cellSize)
	}
	return collision.BruteForce{}
}

// OnEnter registers a callback run whenever a level is (re)entered after
// construction. The client uses it to pan the camera.
func (w *World) OnEnter(fn func(level int)) {
	w.entered = fn
}

// Restart puts everything back where the current level spawns it and
// leaves the Finished state.
func (w *World) Restart() {
	w.State = InLevel
	w.enter(w.Level)
	if w.entered != nil {
		w.entered(w.Level)
	}
}

func (w *World) enter(i int) {
	l := w.Levels[i]
	w.Level = i
	w.Entries++
	w.statics = collision.Statics{Walls: l.Obstacles, Tiles: l.Grid}
	w.grounded = false
	w.contacts = nil

	w.Bodies = w.Bodies[:0]
	w.Bodies = append(w.Bodies, collision.Body{
		Rect: geom.Rect{X: l.Spawn.X, Y: l.Spawn.Y, W: w.Params.PlayerW, H: w.Params.PlayerH},
	})
	for _, b := range l.Bodies {
		w.Bodies = append(w.Bodies, collision.Body{Rect: b.Rect(), VX: b.PatrolVX, VY: b.PatrolVY})
	}
}

// Current returns the level being played.
func (w *World) Current() *leveldata.Level {
	return w.Levels[w.Level]
}

// Player returns body 0.
func (w *World) Player() collision.Body {
	return w.Bodies[0]
}

// Grounded reports whether the player was pushed up out of something in the
// last step.
func (w *World) Grounded() bool {
	return w.grounded
}

// Statics returns the collision geometry of the current level.
func (w *World) Statics() *collision.Statics {
	return &w.statics
}

// Contacts returns the contacts gathered in the last step. The slice is
// reused by the next step.
func (w *World) Contacts() []collision.Contact {
	return w.contacts
}

// LastResult returns the resolver summary of the last step.
func (w *World) LastResult() collision.Result {
	return w.result
}

// BroadPhase returns the broad phase used for contact generation.
func (w *World) BroadPhase() collision.BroadPhase {
	return w.gatherer.Broad
}

// Clone returns an independent copy. Levels are shared since they are
// immutable; the enter callback is not copied.
func (w *World) Clone() *World {
	c := &World{
		Levels:   w.Levels,
		Level:    w.Level,
		State:    w.State,
		Tick:     w.Tick,
		Bodies:   append([]collision.Body(nil), w.Bodies...),
		Params:   w.Params,
		Entries:  w.Entries,
		grounded: w.grounded,
		statics:  w.statics,
		contacts: append([]collision.Contact(nil), w.contacts...),
		result:   w.result,
	}
	c.result.Grounded = append([]bool(nil), w.result.Grounded...)
	c.gatherer.Broad = newBroadPhase(w.Params.SpatialCellSize)
	return c
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	Level     int
	LevelName string
	State     State
	Tick      uint64
	Entries   uint64
	Bodies    []geom.Rect
	Exit      geom.Rect
	Grounded  bool
}

// Snapshot copies out what a renderer needs.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Level:     w.Level,
		LevelName: w.Current().Name,
		State:     w.State,
		Tick:      w.Tick,
		Entries:   w.Entries,
		Bodies:    make([]geom.Rect, len(w.Bodies)),
		Grounded:  w.grounded,
	}
	if exit := w.Current().Exit; exit != nil {
		s.Exit = *exit
	}
	for i, b := range w.Bodies {
		s.Bodies[i] = b.Rect
	}
	return s
}
