// Package cheb approximates scalar functions over a finite real interval by
// a low-degree polynomial in the Chebyshev basis.
//
// Construction samples the target function once at a clustered set of nodes
// and derives a coefficient vector; evaluation reconstructs the approximant
// with Clenshaw's recurrence and never calls back into the original function.
// This makes repeated evaluation cheap even when the original function is
// expensive or unavailable at evaluation time.
//
//   - [New]:               build an [Approximator] for a function and interval
//   - [Layout]:            configurable clustered node placement
//   - [DefaultLayout]:     the standard nine-cluster layout (degree 31)
//   - [Approximator.Eval]: O(n) evaluation inside the interval
//
// An [Approximator] is immutable after construction and safe for concurrent
// use from multiple goroutines.
package cheb
