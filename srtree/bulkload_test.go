package srtree

import "testing"

func TestPartitionSizeMatchesVAMSplitFormula(t *testing.T) {
	// Regression case carried over from the reference implementation:
	// n=5000, leaf capacity 21, internal fan-out target 9 must yield 1701.
	tr := &Tree{params: Params{MinFanout: 9, MaxFanout: 21}}
	got := tr.partitionSize(5000)
	if got != 1701 {
		t.Errorf("partitionSize(5000) = %v; want 1701", got)
	}
}

func TestPartitionSizeSmallInputHalves(t *testing.T) {
	tr := &Tree{params: Params{MinFanout: 2, MaxFanout: 5}}
	got := tr.partitionSize(8)
	want := (8 + 1) / 2
	if got != want {
		t.Errorf("partitionSize(8) = %v; want %v", got, want)
	}
}

func TestMaxVarianceAxisPicksSpreadAxis(t *testing.T) {
	tr := &Tree{
		dimension: 2,
		points: newPointStore([][]float64{
			{0, 5}, {1, 5}, {2, 5}, {100, 5}, {50, 5},
		}),
	}
	axis := tr.maxVarianceAxis([]int{0, 1, 2, 3, 4})
	if axis != 0 {
		t.Errorf("maxVarianceAxis = %v; want 0", axis)
	}
}

func TestPartitionCoversAllIndicesExactlyOnce(t *testing.T) {
	tr := &Tree{
		dimension: 1,
		params:    Params{MinFanout: 2, MaxFanout: 3},
		points:    newPointStore(diagonalPoints1D(20)),
	}
	indices := make([]int, 20)
	for i := range indices {
		indices[i] = i
	}
	groups := tr.partition(indices, 0)

	seen := make(map[int]bool)
	for _, g := range groups {
		if len(g) > tr.params.MaxFanout {
			t.Errorf("group size %d exceeds MaxFanout %d", len(g), tr.params.MaxFanout)
		}
		for _, idx := range g {
			if seen[idx] {
				t.Errorf("index %d appears in more than one group", idx)
			}
			seen[idx] = true
		}
	}
	if len(seen) != 20 {
		t.Errorf("partition covered %d indices; want 20", len(seen))
	}
}

func TestBulkLoadBuildsUsableTree(t *testing.T) {
	params, err := NewParams(2, 4)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	tree, err := EuclideanWithParams(diagonalPoints1D(50), params)
	if err != nil {
		t.Fatalf("EuclideanWithParams: %v", err)
	}
	if tree.NumPoints() != 50 {
		t.Errorf("NumPoints = %v; want 50", tree.NumPoints())
	}
	if tree.Height() < 2 {
		t.Errorf("Height = %v; want at least 2 for 50 points with MaxFanout 4", tree.Height())
	}
}

func diagonalPoints1D(n int) [][]float64 {
	pts := make([][]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = []float64{float64(i)}
	}
	return pts
}
