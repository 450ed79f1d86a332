package cheb

import "fmt"

// Cluster places Count nodes around Offset in the normalized [-1, 1] range.
type Cluster struct {
	Offset float64
	Count  int
}

// Layout describes the clustered node placement used at construction time.
// Within each cluster, node j (1-based) sits at
//
//	offset + jitter*cos(((j-0.5)/count)*pi)
//
// so each cluster carries a miniature cosine-spaced point set of width
// 2*jitter. Clustering trades uniform global accuracy for higher sample
// density where the layout puts it.
type Layout struct {
	Clusters []Cluster
	Jitter   float64
}

// DefaultLayout returns the standard layout: nine clusters placed
// symmetrically about the normalized center with counts 3,3,3,4,5,4,3,3,3
// (degree 31) and jitter amplitude 0.01. Density peaks at the center, which
// suits oscillatory targets with the most curvature mid-interval.
func DefaultLayout() Layout {
	return Layout{
		Clusters: []Cluster{
			{Offset: -0.8, Count: 3},
			{Offset: -0.6, Count: 3},
			{Offset: -0.4, Count: 3},
			{Offset: -0.2, Count: 4},
			{Offset: 0.0, Count: 5},
			{Offset: 0.2, Count: 4},
			{Offset: 0.4, Count: 3},
			{Offset: 0.6, Count: 3},
			{Offset: 0.8, Count: 3},
		},
		Jitter: 0.01,
	}
}

// Degree returns the total node count of the layout.
func (l Layout) Degree() int {
	n := 0
	for _, c := range l.Clusters {
		n += c.Count
	}

	return n
}

func (l Layout) validate() error {
	if len(l.Clusters) == 0 {
		return fmt.Errorf("%w: no clusters", ErrInvalidLayout)
	}

	if l.Jitter < 0 {
		return fmt.Errorf("%w: jitter must be >= 0: %g", ErrInvalidLayout, l.Jitter)
	}

	for i, c := range l.Clusters {
		if c.Count <= 0 {
			return fmt.Errorf("%w: cluster %d count must be > 0: %d", ErrInvalidLayout, i, c.Count)
		}

		// Zero jitter collapses a multi-node cluster onto a single point,
		// which makes the Lagrange basis denominators vanish.
		if c.Count > 1 && l.Jitter == 0 {
			return fmt.Errorf("%w: cluster %d has %d nodes but zero jitter", ErrInvalidLayout, i, c.Count)
		}
	}

	return nil
}
