package srtree

import "math"

// bulkLoad recursively builds a subtree indexing exactly the points named
// by indices, and returns the arena index of its root. It implements the
// variance-directed top-down partitioning described in the package's
// bulk-loading design: at every level it splits the working set along its
// highest-variance axis into slabs sized by partitionSize. A slab that fits
// in one leaf becomes a leaf at once, so leaves do not always lie at the
// same depth: a short final slab can end up shallower than its siblings.
func (t *Tree) bulkLoad(indices []int) int {
	if len(indices) <= t.params.MaxFanout {
		n := newLeaf(indices)
		leafIndex := t.arena.append(n)
		t.reshape(leafIndex)
		if t.progress != nil {
			_ = t.progress.Add(1)
		}
		return leafIndex
	}

	axis := t.maxVarianceAxis(indices)
	groups := t.partition(indices, axis)

	children := make([]int, len(groups))
	maxChildHeight := 0
	for i, group := range groups {
		children[i] = t.bulkLoad(group)
		if h := t.arena.get(children[i]).height; h > maxChildHeight {
			maxChildHeight = h
		}
	}

	n := newInterior(children, maxChildHeight+1)
	nodeIndex := t.arena.append(n)
	t.reshape(nodeIndex)
	for _, childIndex := range children {
		t.arena.get(childIndex).parentIndex = nodeIndex
	}
	return nodeIndex
}

// maxVarianceAxis picks the coordinate axis of maximum variance over the
// points named by indices.
func (t *Tree) maxVarianceAxis(indices []int) int {
	sum := make([]float64, t.dimension)
	sumSq := make([]float64, t.dimension)
	for _, idx := range indices {
		c := t.points.get(idx).coords
		for axis, v := range c {
			sum[axis] += v
			sumSq[axis] += v * v
		}
	}
	n := float64(len(indices))
	bestAxis := 0
	bestVariance := math.Inf(-1)
	for axis := 0; axis < t.dimension; axis++ {
		mean := sum[axis] / n
		variance := sumSq[axis]/n - mean*mean
		if variance > bestVariance {
			bestVariance = variance
			bestAxis = axis
		}
	}
	return bestAxis
}

// partition splits indices along axis into groups sized by
// partitionSize, quickselecting the top group off the end of the working
// slice at each step (so the same nth-element pass that sizes a group also
// leaves it ready to split off).
func (t *Tree) partition(indices []int, axis int) [][]int {
	if len(indices) <= t.params.MaxFanout {
		return [][]int{indices}
	}

	size := t.partitionSize(len(indices))

	working := make([]int, len(indices))
	copy(working, indices)

	var groups [][]int
	for len(working) > 0 {
		groupSize := size
		if groupSize > len(working) {
			groupSize = len(working)
		}
		left := len(working) - groupSize
		quickSelect(working, left, func(i, j int) bool {
			return t.points.get(working[i]).coords[axis] < t.points.get(working[j]).coords[axis]
		})
		group := make([]int, groupSize)
		copy(group, working[left:])
		groups = append(groups, group)
		working = working[:left]
	}
	return groups
}

// partitionSize implements the VAMSplit-style rule: with L = MaxFanout
// (leaf capacity) and F = MinFanout (internal fan-out target), a single
// split into halves suffices while n <= 2L; beyond that,
// P = L * F^floor(log_F(n / (2L))) keeps every recursive call's input at
// roughly F*MaxFanout points, so the resulting interior node's fan-out
// lands close to F. The size is raised to ceil(n/MaxFanout) where needed so
// that no interior node gets more than MaxFanout children.
func (t *Tree) partitionSize(n int) int {
	l := t.params.MaxFanout
	f := t.params.MinFanout
	if n <= 2*l {
		return (n + 1) / 2
	}
	ratio := float64(n) / float64(2*l)
	exponent := math.Floor(math.Log(ratio) / math.Log(float64(f)))
	size := int(float64(l) * math.Pow(float64(f), exponent))
	if minSize := (n + l - 1) / l; size < minSize {
		size = minSize
	}
	return size
}

// quickSelect partitions s in place so that the element that would occupy
// position k under less is in s[k], every element before it compares
// less-or-equal, and every element after it compares greater-or-equal. This
// is the Hoare-style linear-time nth-element selection the partitioning
// step uses to split off the top group without a full sort.
func quickSelect(s []int, k int, less func(i, j int) bool) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := hoarePartition(s, lo, hi, less)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

func hoarePartition(s []int, lo, hi int, less func(i, j int) bool) int {
	mid := lo + (hi-lo)/2
	s[mid], s[hi] = s[hi], s[mid]
	pivot := hi
	store := lo
	for i := lo; i < hi; i++ {
		if less(i, pivot) {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[hi] = s[hi], s[store]
	return store
}
