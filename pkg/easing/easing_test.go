package easing

import "testing"

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":       Linear,
		"quad-out":     QuadOut,
		"cubic-out":    CubicOut,
		"cubic-in-out": CubicInOut,
		"quart-out":    QuartOut,
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			if got := curve(0); got != 0 {
				t.Errorf("curve(0) = %v, want 0", got)
			}
			if got := curve(1); got != 1 {
				t.Errorf("curve(1) = %v, want 1", got)
			}
			// Out-of-range inputs clamp rather than extrapolate.
			if got := curve(-0.5); got != 0 {
				t.Errorf("curve(-0.5) = %v, want 0", got)
			}
			if got := curve(1.5); got != 1 {
				t.Errorf("curve(1.5) = %v, want 1", got)
			}
		})
	}
}

func TestCurvesMonotonic(t *testing.T) {
	curves := map[string]Curve{
		"linear":       Linear,
		"quad-out":     QuadOut,
		"cubic-out":    CubicOut,
		"cubic-in-out": CubicInOut,
		"quart-out":    QuartOut,
	}

	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			prev := curve(0)
			for i := 1; i <= 100; i++ {
				v := curve(float64(i) / 100)
				if v < prev {
					t.Fatalf("curve not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestCubicOutDecelerates(t *testing.T) {
	// An ease-out curve covers more than half the distance in the first
	// half of its time.
	if v := CubicOut(0.5); v <= 0.5 {
		t.Errorf("CubicOut(0.5) = %v, want > 0.5", v)
	}
}
