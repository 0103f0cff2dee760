package core

import "testing"

func TestQueryStatsAdd(t *testing.T) {
	total := QueryStats{VisitedNodes: 1, VisitedLeaves: 2, VisitedPoints: 3, ComparedNodes: 4}
	total.Add(QueryStats{VisitedNodes: 10, VisitedLeaves: 20, VisitedPoints: 30, ComparedNodes: 40})

	want := QueryStats{VisitedNodes: 11, VisitedLeaves: 22, VisitedPoints: 33, ComparedNodes: 44}
	if total != want {
		t.Errorf("Add result = %+v; want %+v", total, want)
	}
}

func TestQueryStatsAddZeroValueIsNoop(t *testing.T) {
	total := QueryStats{VisitedNodes: 5}
	total.Add(QueryStats{})
	if total.VisitedNodes != 5 {
		t.Errorf("VisitedNodes = %v; want 5", total.VisitedNodes)
	}
}
