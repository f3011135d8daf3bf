// Package easing provides the animation curves used to shape dialog
// fade-in and fade-out. A Curve maps normalized time to a normalized
// position; the overlay queue samples it through the host's animation
// primitive every frame.
package easing

import "math"

// Curve maps a normalized time t in [0, 1] to an eased position in [0, 1].
// Curves must return 0 for t <= 0 and 1 for t >= 1.
type Curve func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return clamp(t)
}

// QuadOut decelerates quadratically toward the end position.
func QuadOut(t float64) float64 {
	t = clamp(t)
	return 1 - (1-t)*(1-t)
}

// CubicOut decelerates cubically toward the end position. This is the
// default queue animation.
func CubicOut(t float64) float64 {
	t = clamp(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// CubicInOut accelerates through the first half and decelerates through
// the second.
func CubicInOut(t float64) float64 {
	t = clamp(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// QuartOut decelerates quartically, settling slightly harder than CubicOut.
func QuartOut(t float64) float64 {
	t = clamp(t)
	inv := 1 - t
	return 1 - inv*inv*inv*inv
}

func clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
