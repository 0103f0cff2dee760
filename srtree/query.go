package srtree

import (
	"container/heap"
	"math"
	"sort"

	"github.com/patrikhermansson/srtree/core"
)

// neighborMaxHeap is a bounded max-heap of candidate neighbors keyed by
// distance: its top is always the current farthest (kth-best) candidate, so
// KNN can refresh its pruning radius tau in O(1) and evict the worst
// candidate in O(log k) when a closer one is found.
type neighborMaxHeap []core.Neighbor

func (h neighborMaxHeap) Len() int { return len(h) }
func (h neighborMaxHeap) Less(i, j int) bool {
	if h[i].Distance == h[j].Distance {
		return h[i].Index > h[j].Index
	}
	return h[i].Distance > h[j].Distance
}
func (h neighborMaxHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *neighborMaxHeap) Push(x interface{}) {
	*h = append(*h, x.(core.Neighbor))
}
func (h *neighborMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// KNN returns the indices and distances of the k points of the tree
// minimizing distance to q, sorted by non-decreasing distance. k == 0
// returns empty slices; k greater than the number of indexed points
// returns all of them, unpadded.
func (t *Tree) KNN(q []float64, k int) ([]int, []float64, error) {
	indices, distances, _, err := t.KNNStats(q, k, nil)
	return indices, distances, err
}

// KNNStats behaves like KNN but also returns the traversal counters of this
// call, and adds them into stats when it is non-nil. stats has no effect on
// the result; the counters are collected whether or not stats is nil.
func (t *Tree) KNNStats(q []float64, k int, stats *core.QueryStats) ([]int, []float64, core.QueryStats, error) {
	var local core.QueryStats
	if err := t.dimCheck(q); err != nil {
		return nil, nil, local, err
	}
	if k <= 0 || t.points.len() == 0 {
		return []int{}, []float64{}, local, nil
	}

	h := &neighborMaxHeap{}
	heap.Init(h)
	t.knnVisit(t.root, q, k, h, &local)

	sorted := make([]core.Neighbor, len(*h))
	copy(sorted, *h)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Distance == sorted[j].Distance {
			return sorted[i].Index < sorted[j].Index
		}
		return sorted[i].Distance < sorted[j].Distance
	})

	indices := make([]int, len(sorted))
	distances := make([]float64, len(sorted))
	for i, nb := range sorted {
		indices[i] = nb.Index
		distances[i] = nb.Distance
	}
	if stats != nil {
		stats.Add(local)
	}
	return indices, distances, local, nil
}

// knnVisit performs the best-first, depth-first descent of a kNN query:
// at an interior node, children are visited in
// ascending lower-bound order and the scan stops as soon as a child's bound
// exceeds the current pruning radius tau (the heap's worst candidate, or
// +Inf while the heap has fewer than k entries). At a leaf it walks points
// in descending-radius order, using the ball bound to stop early.
func (t *Tree) knnVisit(nodeIndex int, q []float64, k int, h *neighborMaxHeap, stats *core.QueryStats) {
	n := t.arena.get(nodeIndex)
	if n.isLeaf {
		stats.VisitedLeaves++
		d0 := t.metric.Distance(q, n.sphere.center)
		for _, pointIndex := range n.points {
			stats.VisitedPoints++
			p := t.points.get(pointIndex)
			tau := math.Inf(1)
			if h.Len() == k {
				tau = (*h)[0].Distance
			}
			ballBound := math.Max(0, d0-p.radius)
			if ballBound > tau {
				break
			}
			d := t.metric.Distance(q, p.coords)
			if h.Len() < k {
				heap.Push(h, core.Neighbor{Index: p.index, Distance: d})
			} else if d < tau {
				heap.Pop(h)
				heap.Push(h, core.Neighbor{Index: p.index, Distance: d})
			}
		}
		return
	}

	stats.VisitedNodes++
	ordered := t.sortChildrenByLowerBound(n.children, q)
	for _, childIndex := range ordered {
		stats.ComparedNodes++
		tau := math.Inf(1)
		if h.Len() == k {
			tau = (*h)[0].Distance
		}
		if t.lowerBound(childIndex, q) > tau {
			break
		}
		t.knnVisit(childIndex, q, k, h, stats)
	}
}

// Radius returns the indices of every point within r of q. Order is
// unspecified.
func (t *Tree) Radius(q []float64, r float64) ([]int, error) {
	indices, _, err := t.RadiusStats(q, r, nil)
	return indices, err
}

// RadiusStats behaves like Radius but additionally accumulates traversal
// instrumentation into stats when it is non-nil.
func (t *Tree) RadiusStats(q []float64, r float64, stats *core.QueryStats) ([]int, core.QueryStats, error) {
	var local core.QueryStats
	if err := t.dimCheck(q); err != nil {
		return nil, local, err
	}
	var result []int
	if t.points.len() > 0 {
		t.radiusVisit(t.root, q, r, &result, &local)
	}
	if stats != nil {
		stats.Add(local)
	}
	if result == nil {
		result = []int{}
	}
	return result, local, nil
}

// radiusVisit mirrors knnVisit's traversal with a fixed pruning radius r
// that never shrinks: a child is entered iff its lower bound to q is at
// most r, and leaf scanning short-circuits once the ball bound exceeds r.
func (t *Tree) radiusVisit(nodeIndex int, q []float64, r float64, result *[]int, stats *core.QueryStats) {
	n := t.arena.get(nodeIndex)
	if n.isLeaf {
		stats.VisitedLeaves++
		d0 := t.metric.Distance(q, n.sphere.center)
		for _, pointIndex := range n.points {
			stats.VisitedPoints++
			p := t.points.get(pointIndex)
			ballBound := math.Max(0, d0-p.radius)
			if ballBound > r {
				break
			}
			d := t.metric.Distance(q, p.coords)
			if d <= r {
				*result = append(*result, p.index)
			}
		}
		return
	}

	stats.VisitedNodes++
	for _, childIndex := range n.children {
		stats.ComparedNodes++
		if t.lowerBound(childIndex, q) <= r {
			t.radiusVisit(childIndex, q, r, result, stats)
		}
	}
}
