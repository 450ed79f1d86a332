package testutil

import (
	"math"
	"testing"
)

func TestSineOverTwoPiZeros(t *testing.T) {
	for _, x := range []float64{-2, -1, -0.5, 0, 0.5, 1, 2} {
		if got := SineOverTwoPi(x); math.Abs(got) > 1e-15 {
			t.Fatalf("SineOverTwoPi(%v) = %v, want 0", x, got)
		}
	}
}

func TestSineOverTwoPiPeak(t *testing.T) {
	got := SineOverTwoPi(0.25)
	want := 1 / (2 * math.Pi)
	if math.Abs(got-want) > 1e-15 {
		t.Fatalf("SineOverTwoPi(0.25) = %v, want %v", got, want)
	}
}

func TestUniformGrid(t *testing.T) {
	g := UniformGrid(-4, 4, 5)
	RequireSliceNearlyEqual(t, g, []float64{-4, -2, 0, 2, 4}, 1e-15)

	if g[0] != -4 || g[len(g)-1] != 4 {
		t.Fatalf("grid endpoints %v, %v must equal bounds", g[0], g[len(g)-1])
	}
}
