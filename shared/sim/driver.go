package sim

import "time"

// DefaultStep is the prototypes' 1/60 s tick.
const DefaultStep = time.Second / 60

// Driver converts variable frame times into a whole number of fixed steps.
// The accumulator is in integer nanoseconds, so the total number of steps
// for a run is floor(total elapsed / Step) however the time is chunked.
type Driver struct {
	Step time.Duration
	// MaxSteps caps the steps run by one Advance call. Time beyond the cap
	// stays in the accumulator and is caught up by later calls. Zero means
	// no cap.
	MaxSteps int

	acc time.Duration
}

// NewDriver returns a driver with the given step, or DefaultStep when step
// is not positive.
func NewDriver(step time.Duration) *Driver {
	if step <= 0 {
		step = DefaultStep
	}
	return &Driver{Step: step}
}

// Advance adds elapsed to the accumulator and calls fn once per whole step
// it holds. Negative elapsed is ignored. It returns the number of steps run.
func (d *Driver) Advance(elapsed time.Duration, fn func()) int {
	if d.Step <= 0 {
		d.Step = DefaultStep
	}
	if elapsed > 0 {
		d.acc += elapsed
	}

	steps := 0
	for d.acc >= d.Step {
		if d.MaxSteps > 0 && steps == d.MaxSteps {
			break
		}
		fn()
		d.acc -= d.Step
		steps++
	}
	return steps
}

// Pending returns the time accumulated toward the next step.
func (d *Driver) Pending() time.Duration {
	return d.acc
}

// Alpha is Pending as a fraction of Step, for interpolating rendering.
func (d *Driver) Alpha() float64 {
	if d.Step <= 0 {
		return 0
	}
	return float64(d.acc) / float64(d.Step)
}

// Reset drops any accumulated time.
func (d *Driver) Reset() {
	d.acc = 0
}
