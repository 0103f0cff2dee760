// Package srtree implements an in-memory spatial index for exact
// k-nearest-neighbor and radius queries over finite point sets. Each
// interior node carries both a minimum bounding rectangle (MBR) and a
// minimum bounding sphere (MBS); queries prune using their intersection,
// since each shape excludes candidates the other cannot.
//
// The tree is built once, in bulk, from a caller-owned slice of coordinate
// vectors (Build/Euclidean/EuclideanWithParams/Default) and is read-only for
// the rest of its life: queries may run concurrently from multiple
// goroutines without any locking.
package srtree

import (
	"sort"

	"github.com/patrikhermansson/srtree/core"
	"github.com/schollz/progressbar/v3"
)

// Tree is an immutable, bulk-loaded spatial index.
type Tree struct {
	points    *pointStore
	arena     *arena
	root      int
	params    Params
	metric    core.Metric
	dimension int

	progress *progressbar.ProgressBar // optional, see WithProgress
}

// Build constructs a Tree from coords using the given shape parameters and
// metric. The dimension is inferred from the first point.
func Build(coords [][]float64, params Params, metric core.Metric) (*Tree, error) {
	return buildWithConfig(coords, params, metric, &buildConfig{})
}

func buildWithConfig(coords [][]float64, params Params, metric core.Metric, cfg *buildConfig) (*Tree, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyInput
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	dimension := len(coords[0])
	for i, c := range coords {
		if len(c) != dimension {
			return nil, &DimensionMismatchError{Index: i, Expected: dimension, Got: len(c)}
		}
	}

	t := &Tree{
		points:    newPointStore(coords),
		arena:     newArena(),
		params:    params,
		metric:    metric,
		dimension: dimension,
		progress:  cfg.progress,
	}

	indices := make([]int, len(coords))
	for i := range indices {
		indices[i] = i
	}
	t.root = t.bulkLoad(indices)
	return t, nil
}

// Euclidean builds a Tree with default shape parameters and the Euclidean
// metric.
func Euclidean(coords [][]float64) (*Tree, error) {
	return Build(coords, DefaultParams(), core.DefaultMetric)
}

// EuclideanWithParams builds a Tree with the given shape parameters and the
// Euclidean metric.
func EuclideanWithParams(coords [][]float64, params Params) (*Tree, error) {
	return Build(coords, params, core.DefaultMetric)
}

// Default builds a Tree with default shape parameters and a caller-supplied
// metric.
func Default(coords [][]float64, metric core.Metric) (*Tree, error) {
	return Build(coords, DefaultParams(), metric)
}

// Dimension returns the dimension every point and query vector must match.
func (t *Tree) Dimension() int {
	return t.dimension
}

// NumPoints returns the number of points the tree was built from.
func (t *Tree) NumPoints() int {
	return t.points.len()
}

// NodeCount returns the number of nodes in the arena, including leaves.
func (t *Tree) NodeCount() int {
	return t.arena.len()
}

// LeafCount returns the number of leaf nodes.
func (t *Tree) LeafCount() int {
	count := 0
	for i := 0; i < t.arena.len(); i++ {
		if t.arena.get(i).isLeaf {
			count++
		}
	}
	return count
}

// Height returns the height of the root: 1 for a single leaf, k+1 for a
// node whose deepest child has height k.
func (t *Tree) Height() int {
	return t.arena.get(t.root).height
}

func (t *Tree) dimCheck(q []float64) error {
	if len(q) != t.dimension {
		return ErrQueryDimensionMismatch
	}
	return nil
}

// sortChildrenByLowerBound sorts child indices by ascending combined
// sphere+rectangle lower bound to q, used for best-first descent at
// interior nodes during kNN queries. Radius queries visit children in
// stored order and do not call it.
func (t *Tree) sortChildrenByLowerBound(children []int, q []float64) []int {
	sorted := make([]int, len(children))
	copy(sorted, children)
	bounds := make(map[int]float64, len(sorted))
	for _, c := range sorted {
		bounds[c] = t.lowerBound(c, q)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return bounds[sorted[i]] < bounds[sorted[j]]
	})
	return sorted
}

// lowerBound returns the combined sphere+rectangle lower bound from q to
// the subtree rooted at nodeIndex.
func (t *Tree) lowerBound(nodeIndex int, q []float64) float64 {
	n := t.arena.get(nodeIndex)
	ds := n.sphere.minDistance(q, t.metric)
	dr := n.rect.minDistance(q, t.metric)
	if ds > dr {
		return ds
	}
	return dr
}
