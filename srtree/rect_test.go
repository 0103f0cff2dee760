package srtree

import (
	"testing"

	"github.com/patrikhermansson/srtree/core"
)

func TestRectangleMinDistance(t *testing.T) {
	r := rectangle{low: []float64{5, 5}, high: []float64{10, 10}}
	got := r.minDistance([]float64{5, 0}, core.Euclidean{})
	want := 5.0
	if got != want {
		t.Errorf("minDistance = %v; want %v", got, want)
	}
}

func TestRectangleMinDistanceInsidePoint(t *testing.T) {
	r := rectangle{low: []float64{0, 0}, high: []float64{10, 10}}
	got := r.minDistance([]float64{4, 4}, core.Euclidean{})
	if got != 0 {
		t.Errorf("minDistance for contained point = %v; want 0", got)
	}
}

func TestRectangleFarthestPoint(t *testing.T) {
	r := rectangle{low: []float64{5, 5}, high: []float64{10, 10}}
	cases := []struct {
		q    []float64
		want []float64
	}{
		{[]float64{0, 0}, []float64{10, 10}},
		{[]float64{15, 0}, []float64{5, 10}},
		{[]float64{0, 15}, []float64{10, 5}},
		{[]float64{15, 15}, []float64{5, 5}},
		{[]float64{15, 5}, []float64{5, 10}},
	}
	for _, c := range cases {
		got := r.farthestPoint(c.q)
		if got[0] != c.want[0] || got[1] != c.want[1] {
			t.Errorf("farthestPoint(%v) = %v; want %v", c.q, got, c.want)
		}
	}
}

func TestRectFromPoint(t *testing.T) {
	r := rectFromPoint([]float64{1, 2, 3})
	for i, v := range r.low {
		if v != r.high[i] {
			t.Errorf("degenerate rectangle should have low == high, got low=%v high=%v", r.low, r.high)
		}
		if v != []float64{1, 2, 3}[i] {
			t.Errorf("rectFromPoint low[%d] = %v; want %v", i, v, []float64{1, 2, 3}[i])
		}
	}
}
