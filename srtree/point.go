package srtree

// noParent marks a node or point as having no parent (the root, or a point
// not yet assigned during construction).
const noParent = -1

// point is an entry in the point store. It holds the original coordinate
// vector, the point's position in the host's input slice, its distance to
// the centroid of the leaf that currently owns it, and that leaf's arena
// index.
//
// radius and parentIndex are established by reshape (see reshape.go) and
// are only meaningful once the tree has finished building: radius equals
// the metric distance from the point to its parent leaf's sphere center,
// and parentIndex is the arena index of that leaf.
type point struct {
	coords      []float64
	index       int
	radius      float64
	parentIndex int
}

// pointStore owns every point indexed by the tree. Points are never
// reordered in the store; only the leaf membership lists (held on nodes)
// and the per-point radius/parentIndex bookkeeping change during
// construction.
type pointStore struct {
	points []point
}

func newPointStore(coords [][]float64) *pointStore {
	points := make([]point, len(coords))
	for i, c := range coords {
		points[i] = point{coords: c, index: i, parentIndex: noParent}
	}
	return &pointStore{points: points}
}

func (s *pointStore) get(i int) *point {
	return &s.points[i]
}

func (s *pointStore) len() int {
	return len(s.points)
}
