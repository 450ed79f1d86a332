package cheb

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval is returned when the interval bounds are non-finite
	// or lower >= upper.
	ErrInvalidInterval = errors.New("cheb: invalid interval")

	// ErrDegreeMismatch is returned when the requested degree does not equal
	// the total node count of the layout.
	ErrDegreeMismatch = errors.New("cheb: degree does not match node layout")

	// ErrInvalidLayout is returned for malformed node layouts.
	ErrInvalidLayout = errors.New("cheb: invalid node layout")

	// ErrFunctionEval is matched via errors.Is by any [FunctionError] raised
	// while sampling the target function.
	ErrFunctionEval = errors.New("cheb: function evaluation failed")

	// ErrDomain is returned by Eval for query points outside the interval.
	ErrDomain = errors.New("cheb: query point outside interval")
)

// FunctionError reports a failure of the sampled function at a single node.
// It matches [ErrFunctionEval] with errors.Is and unwraps to the underlying
// cause.
type FunctionError struct {
	Node int     // node index in 0..degree-1
	X    float64 // mapped sample position inside the interval
	Err  error
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("cheb: function evaluation failed at node %d (x=%g): %v", e.Node, e.X, e.Err)
}

func (e *FunctionError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrFunctionEval].
func (e *FunctionError) Is(target error) bool { return target == ErrFunctionEval }
