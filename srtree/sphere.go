package srtree

import (
	"math"

	"github.com/patrikhermansson/srtree/core"
)

// sphere is a minimum bounding sphere: every descendant point or subtree
// lies within radius of center.
type sphere struct {
	center []float64
	radius float64
}

func sphereFromPoint(coords []float64) sphere {
	center := make([]float64, len(coords))
	copy(center, coords)
	return sphere{center: center, radius: 0}
}

// minDistance returns max(0, d(q,center) - radius), a lower bound on the
// distance from q to any point inside the sphere.
func (s sphere) minDistance(q []float64, metric core.Metric) float64 {
	d := metric.Distance(s.center, q)
	return math.Max(0, d-s.radius)
}

// maxDistance returns d(q,center) + radius, an upper bound on the distance
// from q to any point inside the sphere.
func (s sphere) maxDistance(q []float64, metric core.Metric) float64 {
	return metric.Distance(s.center, q) + s.radius
}
