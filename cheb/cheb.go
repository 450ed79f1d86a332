package cheb

import (
	"fmt"
	"math"
)

// Approximator is an immutable Chebyshev-basis polynomial approximation of a
// scalar function over a fixed interval. It holds only the interval bounds
// and the coefficient vector, so concurrent Eval calls are safe without
// locking.
type Approximator struct {
	lower  float64
	upper  float64
	coeffs []float64
}

// New samples f at the layout's nodes mapped into [lower, upper] and builds
// the coefficient vector. degree must equal the layout's total node count
// (31 for the default layout). f is invoked only here; Eval never calls it.
//
// A failed construction yields no usable Approximator: any sampling error
// aborts with a [FunctionError] and no partial state.
func New(lower, upper float64, degree int, f Evaluable, opts ...Option) (*Approximator, error) {
	if !isFinite(lower) || !isFinite(upper) || lower >= upper {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, lower, upper)
	}

	if f == nil {
		return nil, fmt.Errorf("cheb: function must not be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.layout.validate(); err != nil {
		return nil, err
	}

	if n := cfg.layout.Degree(); degree != n {
		return nil, fmt.Errorf("%w: requested %d, layout has %d nodes", ErrDegreeMismatch, degree, n)
	}

	nodes := cfg.layout.nodes()

	samples := make([]float64, len(nodes))
	for i, node := range nodes {
		x := mapToInterval(node, lower, upper)

		y, err := f.Eval(x)
		if err != nil {
			return nil, &FunctionError{Node: i, X: x, Err: err}
		}

		samples[i] = y
	}

	var coeffs []float64
	switch cfg.strategy {
	case StrategyCosineSum:
		coeffs = cosineSumCoeffs(samples)
	default:
		coeffs = sampleLagrangeCoeffs(nodes, samples)
	}

	return &Approximator{
		lower:  lower,
		upper:  upper,
		coeffs: coeffs,
	}, nil
}

// Eval evaluates the approximant at x using Clenshaw's recurrence over the
// coefficient vector. x must lie in [lower, upper]; out-of-interval queries
// fail with [ErrDomain] and perform no computation.
func (a *Approximator) Eval(x float64) (float64, error) {
	if math.IsNaN(x) || x < a.lower || x > a.upper {
		return 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrDomain, x, a.lower, a.upper)
	}

	// A one-term series is the constant 0.5*c[0]; the recurrence below
	// would double-count the leading coefficient.
	if len(a.coeffs) == 1 {
		return 0.5 * a.coeffs[0], nil
	}

	// Map x into the normalized variable y in [-1, 1].
	y := (2*x - a.lower - a.upper) / (a.upper - a.lower)

	d := a.coeffs[len(a.coeffs)-1]
	dd := 0.0

	for j := len(a.coeffs) - 2; j >= 1; j-- {
		d, dd = 2*y*d-dd+a.coeffs[j], d
	}

	return y*d - dd + 0.5*a.coeffs[0], nil
}

// Bounds returns the interval the approximator was constructed over.
func (a *Approximator) Bounds() (lower, upper float64) {
	return a.lower, a.upper
}

// Degree returns the length of the coefficient vector.
func (a *Approximator) Degree() int {
	return len(a.coeffs)
}

// Coefficients returns a copy of the Chebyshev-basis coefficient vector.
func (a *Approximator) Coefficients() []float64 {
	out := make([]float64, len(a.coeffs))
	copy(out, a.coeffs)

	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
