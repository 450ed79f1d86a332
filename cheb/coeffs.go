package cheb

import "math"

// Strategy selects how the coefficient vector is derived from the sampled
// function values.
type Strategy int

const (
	// StrategySampleLagrange evaluates each node's Lagrange basis polynomial
	// at the function value sampled at that node:
	//
	//	c[i] = prod_{k != i} (f(x_i) - node_k) / (node_i - node_k)
	//
	// over the normalized node positions. This is the default.
	StrategySampleLagrange Strategy = iota

	// StrategyCosineSum computes classical Chebyshev series coefficients by
	// cosine-weighted summation of the sampled values:
	//
	//	c[j] = (2/n) * sum_k f(x_k) * cos(pi*j*(k+0.5)/n)
	StrategyCosineSum
)

// lagrangeBasis evaluates the Lagrange basis polynomial of node i over the
// node set at v. The basis is 1 at node i and 0 at every other node.
func lagrangeBasis(nodes []float64, i int, v float64) float64 {
	p := 1.0

	for k, nk := range nodes {
		if k == i {
			continue
		}

		p *= (v - nk) / (nodes[i] - nk)
	}

	return p
}

// sampleLagrangeCoeffs builds the coefficient vector by evaluating each
// node's Lagrange basis at that node's sampled function value. O(n^2).
func sampleLagrangeCoeffs(nodes, samples []float64) []float64 {
	coeffs := make([]float64, len(nodes))
	for i := range nodes {
		coeffs[i] = lagrangeBasis(nodes, i, samples[i])
	}

	return coeffs
}

// cosineSumCoeffs builds classical Chebyshev series coefficients from the
// sampled values. O(n^2).
func cosineSumCoeffs(samples []float64) []float64 {
	n := len(samples)
	coeffs := make([]float64, n)
	scale := 2 / float64(n)

	for j := range coeffs {
		sum := 0.0
		for k, s := range samples {
			sum += s * math.Cos(math.Pi*float64(j)*(float64(k)+0.5)/float64(n))
		}

		coeffs[j] = scale * sum
	}

	return coeffs
}
