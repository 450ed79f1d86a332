// Package accuracy measures how closely an Approximator tracks its target
// function: dense-grid error statistics and an FFT-based spectrum of the
// pointwise error.
package accuracy

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-cheb/cheb"
	"github.com/cwbudde/algo-vecmath"
)

const defaultSamples = 1024

// Config holds measurement parameters.
type Config struct {
	// Samples is the uniform grid size over the approximator's interval.
	// Values <= 1 fall back to the default of 1024.
	Samples int
}

// Report holds dense-grid error statistics.
type Report struct {
	Samples      int
	MaxAbsError  float64
	MaxAbsErrorX float64 // grid position of the worst error
	RMSError     float64
}

// Measure evaluates f and ap on a uniform grid over ap's interval and
// reports pointwise error statistics. Grid endpoints coincide with the
// interval bounds.
func Measure(f cheb.Evaluable, ap *cheb.Approximator, cfg Config) (Report, error) {
	if f == nil || ap == nil {
		return Report{}, fmt.Errorf("accuracy: function and approximator must not be nil")
	}

	n := cfg.Samples
	if n <= 1 {
		n = defaultSamples
	}

	lower, upper := ap.Bounds()
	step := (upper - lower) / float64(n-1)

	rep := Report{Samples: n, MaxAbsErrorX: lower}
	sumSq := 0.0

	for i := range n {
		x := lower + float64(i)*step
		if i == n-1 {
			x = upper
		}

		want, err := f.Eval(x)
		if err != nil {
			return Report{}, fmt.Errorf("accuracy: target function at x=%g: %w", x, err)
		}

		got, err := ap.Eval(x)
		if err != nil {
			return Report{}, fmt.Errorf("accuracy: approximant at x=%g: %w", x, err)
		}

		diff := math.Abs(got - want)
		if diff > rep.MaxAbsError {
			rep.MaxAbsError = diff
			rep.MaxAbsErrorX = x
		}

		sumSq += diff * diff
	}

	rep.RMSError = mathSqrt(sumSq / float64(n))

	return rep, nil
}

// ErrorSpectrum samples the pointwise error approximant-minus-target on a
// power-of-two grid of midpoints over ap's interval, runs a forward FFT, and
// returns the magnitudes of the fftSize/2+1 non-negative frequency bins. For
// an oscillatory target the dominant bin locates the frequency the
// approximation fails to track.
//
// fftSize is rounded up to the next power of two; values <= 0 fall back to
// the default grid size.
func ErrorSpectrum(f cheb.Evaluable, ap *cheb.Approximator, fftSize int) ([]float64, error) {
	if f == nil || ap == nil {
		return nil, fmt.Errorf("accuracy: function and approximator must not be nil")
	}

	if fftSize <= 0 {
		fftSize = defaultSamples
	}
	fftSize = nextPowerOf2(fftSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("accuracy: failed to create FFT plan: %w", err)
	}

	lower, upper := ap.Bounds()
	step := (upper - lower) / float64(fftSize)

	in := make([]complex128, fftSize)
	for i := range in {
		x := lower + (float64(i)+0.5)*step

		want, err := f.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("accuracy: target function at x=%g: %w", x, err)
		}

		got, err := ap.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("accuracy: approximant at x=%g: %w", x, err)
		}

		in[i] = complex(got-want, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("accuracy: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return mags, nil
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
