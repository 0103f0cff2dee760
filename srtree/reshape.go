package srtree

import "sort"

// reshape recomputes a node's bounding rectangle, bounding sphere, and
// variance from its current membership. It is called whenever a node's
// membership changes during bulk loading (see bulkload.go).
//
// For a leaf it also assigns each member point's radius (its distance to
// the new centroid) and parentIndex (this node), then sorts the leaf's
// point list into descending radius order so that knn/radius queries can
// stop scanning a leaf as soon as the ball bound exceeds the pruning
// distance.
func (t *Tree) reshape(nodeIndex int) {
	centroid := t.mean(nodeIndex)
	n := t.arena.get(nodeIndex)

	low := make([]float64, t.dimension)
	high := make([]float64, t.dimension)
	copy(low, centroid)
	copy(high, centroid)

	var maxDistance float64

	if n.isLeaf {
		type memberDistance struct {
			pointIndex int
			distance   float64
		}
		members := make([]memberDistance, len(n.points))
		for i, pointIndex := range n.points {
			p := t.points.get(pointIndex)
			for axis := range low {
				if p.coords[axis] < low[axis] {
					low[axis] = p.coords[axis]
				}
				if p.coords[axis] > high[axis] {
					high[axis] = p.coords[axis]
				}
			}
			d := t.metric.Distance(centroid, p.coords)
			if d > maxDistance {
				maxDistance = d
			}
			members[i] = memberDistance{pointIndex: pointIndex, distance: d}
		}

		for _, m := range members {
			p := t.points.get(m.pointIndex)
			p.radius = m.distance
			p.parentIndex = nodeIndex
		}

		sort.Slice(members, func(i, j int) bool {
			return members[i].distance > members[j].distance
		})
		sortedPoints := make([]int, len(members))
		for i, m := range members {
			sortedPoints[i] = m.pointIndex
		}
		n.points = sortedPoints
	} else {
		for _, childIndex := range n.children {
			child := t.arena.get(childIndex)
			for axis := range low {
				if child.rect.low[axis] < low[axis] {
					low[axis] = child.rect.low[axis]
				}
				if child.rect.high[axis] > high[axis] {
					high[axis] = child.rect.high[axis]
				}
			}
			d := child.sphere.maxDistance(centroid, t.metric)
			if d > maxDistance {
				maxDistance = d
			}
		}
	}

	n.rect = rectangle{low: low, high: high}
	n.sphere = sphere{center: centroid, radius: maxDistance}
	n.variance = t.variance(nodeIndex)
}
