package srtree

import "github.com/patrikhermansson/srtree/core"

// rectangle is an axis-aligned minimum bounding rectangle: low[i] <= high[i]
// for every axis i.
type rectangle struct {
	low  []float64
	high []float64
}

// rectFromPoint returns the degenerate rectangle enclosing a single point.
func rectFromPoint(coords []float64) rectangle {
	low := make([]float64, len(coords))
	high := make([]float64, len(coords))
	copy(low, coords)
	copy(high, coords)
	return rectangle{low: low, high: high}
}

// minDistance returns the metric distance from q to the closest point the
// rectangle could contain: q clamped component-wise into [low, high].
func (r rectangle) minDistance(q []float64, metric core.Metric) float64 {
	closest := make([]float64, len(q))
	for i := range q {
		switch {
		case q[i] < r.low[i]:
			closest[i] = r.low[i]
		case q[i] > r.high[i]:
			closest[i] = r.high[i]
		default:
			closest[i] = q[i]
		}
	}
	return metric.Distance(closest, q)
}

// farthestPoint returns the vertex of the rectangle farthest from q, picking
// whichever endpoint is farther from q on each axis independently.
func (r rectangle) farthestPoint(q []float64) []float64 {
	result := make([]float64, len(q))
	for i := range q {
		if distAbs(r.high[i]-q[i]) >= distAbs(r.low[i]-q[i]) {
			result[i] = r.high[i]
		} else {
			result[i] = r.low[i]
		}
	}
	return result
}

func distAbs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
