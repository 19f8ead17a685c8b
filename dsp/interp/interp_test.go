package interp

import (
	"math"
	"testing"
)

func TestLinearEndpoints(t *testing.T) {
	if got := Linear(0, 2, 5); got != 2 {
		t.Errorf("Linear(0) = %g, want 2", got)
	}

	if got := Linear(1, 2, 5); got != 5 {
		t.Errorf("Linear(1) = %g, want 5", got)
	}

	if got := Linear(0.5, 2, 4); got != 3 {
		t.Errorf("Linear(0.5) = %g, want 3", got)
	}
}

func TestHermite4Endpoints(t *testing.T) {
	// At t=0 the interpolator must return x0, at t=1 it must return x1,
	// for any neighbor values.
	cases := [][4]float64{
		{0, 1, 2, 3},
		{-1, 0.5, -0.25, 2},
		{3, 3, 3, 3},
	}

	for _, c := range cases {
		if got := Hermite4(0, c[0], c[1], c[2], c[3]); got != c[1] {
			t.Errorf("Hermite4(0, %v) = %g, want %g", c, got, c[1])
		}

		if got := Hermite4(1, c[0], c[1], c[2], c[3]); got != c[2] {
			t.Errorf("Hermite4(1, %v) = %g, want %g", c, got, c[2])
		}
	}
}

func TestHermite4ReproducesLine(t *testing.T) {
	// Cubic interpolation is exact for points on a straight line.
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := Hermite4(frac, 0, 1, 2, 3)
		want := 1 + frac
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Hermite4(%g) on line = %g, want %g", frac, got, want)
		}
	}
}
