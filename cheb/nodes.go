package cheb

import "math"

// nodes returns the layout's node positions in the normalized range, in
// cluster order.
func (l Layout) nodes() []float64 {
	out := make([]float64, 0, l.Degree())

	for _, c := range l.Clusters {
		for j := 1; j <= c.Count; j++ {
			phase := (float64(j) - 0.5) / float64(c.Count) * math.Pi
			out = append(out, c.Offset+l.Jitter*math.Cos(phase))
		}
	}

	return out
}

// mapToInterval maps a normalized node position into [lower, upper].
func mapToInterval(node, lower, upper float64) float64 {
	return 0.5*(lower+upper) + 0.5*(upper-lower)*node
}
