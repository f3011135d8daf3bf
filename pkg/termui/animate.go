package termui

import (
	"math"
	"time"

	"github.com/entrhq/parley/pkg/easing"
)

// anim interpolates one animation value over wall-clock time. The value
// moves from `from` toward `target`; flipping the target mid-flight
// restarts the interpolation from the current position, so reversals are
// smooth and shorter moves take proportionally less time.
type anim struct {
	from   float64
	target float64
	start  time.Time
}

func (a *anim) retarget(target float64, now time.Time, d time.Duration, curve easing.Curve) {
	if a.target == target {
		return
	}
	a.from = a.valueAt(now, d, curve)
	a.target = target
	a.start = now
}

func (a *anim) valueAt(now time.Time, d time.Duration, curve easing.Curve) float64 {
	span := math.Abs(a.target - a.from)
	if span == 0 {
		return a.target
	}
	total := time.Duration(float64(d) * span)
	if total <= 0 {
		return a.target
	}
	t := float64(now.Sub(a.start)) / float64(total)
	if t >= 1 {
		return a.target
	}
	if t < 0 {
		t = 0
	}
	if curve == nil {
		curve = easing.Linear
	}
	return a.from + (a.target-a.from)*curve(t)
}

func (a *anim) settled(now time.Time, d time.Duration) bool {
	return a.valueAt(now, d, easing.Linear) == a.target
}
