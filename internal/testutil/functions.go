package testutil

import "math"

// SineOverTwoPi is the demonstration target f(x) = sin(2*pi*x)/(2*pi) used
// across tests.
func SineOverTwoPi(x float64) float64 {
	return math.Sin(2*math.Pi*x) / (2 * math.Pi)
}

// UniformGrid returns n uniformly spaced points spanning [lower, upper]
// inclusive. n must be >= 2.
func UniformGrid(lower, upper float64, n int) []float64 {
	out := make([]float64, n)
	step := (upper - lower) / float64(n-1)
	for i := range out {
		out[i] = lower + float64(i)*step
	}
	out[n-1] = upper
	return out
}
