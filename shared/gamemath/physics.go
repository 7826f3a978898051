// Package gamemath holds the small integer helpers used to turn input into
// body velocities.
package gamemath

// ApplyFriction moves speed toward zero by friction without overshooting.
func ApplyFriction(speed, friction int32) int32 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max int32) int32 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Axis folds a pair of opposing inputs into -1, 0 or 1.
func Axis(negative, positive bool) int32 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	}
	return 0
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
