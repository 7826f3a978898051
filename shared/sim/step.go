package sim

import (
	"github.com/automoto/engine2d/shared/collision"
	"github.com/automoto/engine2d/shared/gamemath"
	"github.com/automoto/engine2d/shared/geom"
)

// Input is the held-key snapshot for one step.
type Input struct {
	Left, Right, Up, Down bool
}

// Step advances w by one fixed step: input, integration, contact
// generation, restitution, patrol turnarounds and level transitions.
// It does nothing once the world is Finished.
func Step(w *World, in Input) {
	if w.State == Finished {
		return
	}
	w.Tick++

	w.applyInput(in)

	before := make([]collision.Body, len(w.Bodies))
	copy(before, w.Bodies)
	for i := range w.Bodies {
		b := &w.Bodies[i]
		b.Rect = b.Rect.Translate(b.VX, b.VY)
	}

	w.contacts = w.gatherer.Gather(&w.statics, w.Bodies)
	w.result = collision.Restitute(&w.statics, w.Bodies, w.contacts)
	w.grounded = w.result.Grounded[0]

	// Patrolling bodies turn around when something stops them.
	for i := 1; i < len(w.Bodies); i++ {
		b := &w.Bodies[i]
		if b.VX == 0 && before[i].VX != 0 {
			b.VX = -before[i].VX
		}
		if b.VY == 0 && before[i].VY != 0 {
			b.VY = -before[i].VY
		}
	}

	w.transition()
}

func (w *World) applyInput(in Input) {
	p := &w.Bodies[0]
	ax := gamemath.Axis(in.Left, in.Right)
	ay := gamemath.Axis(in.Up, in.Down)

	switch w.Params.Mode {
	case ModePlatformer:
		if ax != 0 {
			p.VX = ax * w.Params.Speed
		} else {
			p.VX = gamemath.ApplyFriction(p.VX, w.Params.Friction)
		}
		if in.Up && w.grounded {
			p.VY = -w.Params.JumpSpeed
		}
		p.VY += w.Params.Gravity
		if p.VY > w.Params.MaxFall {
			p.VY = w.Params.MaxFall
		}
	default:
		p.VX = ax * w.Params.Speed
		p.VY = ay * w.Params.Speed
	}
}

// transition moves the player to the next level when it touches the exit.
// Obstacles never change the level.
func (w *World) transition() {
	exit := w.Current().Exit
	if exit == nil || !geom.Touching(w.Bodies[0].Rect, *exit) {
		return
	}

	next := w.Level + 1
	if next >= len(w.Levels) {
		if w.Params.End == EndFinish {
			w.State = Finished
			return
		}
		next = w.Level
	}
	w.enter(next)
	if w.entered != nil {
		w.entered(next)
	}
}
