package cheb

// Evaluable is the function capability sampled at construction time: a
// scalar real function that may fail at a given point. Implementations can
// be plain functions (see [Func] and [FallibleFunc]) or stateful objects.
type Evaluable interface {
	Eval(x float64) (float64, error)
}

// Func adapts an infallible func(float64) float64 to [Evaluable].
type Func func(x float64) float64

// Eval implements [Evaluable]. It never returns an error.
func (f Func) Eval(x float64) (float64, error) { return f(x), nil }

// FallibleFunc adapts a func(float64) (float64, error) to [Evaluable].
type FallibleFunc func(x float64) (float64, error)

// Eval implements [Evaluable].
func (f FallibleFunc) Eval(x float64) (float64, error) { return f(x) }
