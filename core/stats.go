package core

// QueryStats holds optional per-query instrumentation counters: nodes and
// leaves visited during a traversal, and the points and subtrees actually
// compared against the pruning bound. They have no effect on query results
// and exist purely for testing and tuning tree shape.
//
// Unlike a package-level counter, QueryStats is owned by the caller and
// threaded through a single traversal, so concurrent queries against the
// same tree never share mutable state.
type QueryStats struct {
	VisitedNodes  int
	VisitedLeaves int
	VisitedPoints int
	ComparedNodes int
}

// Add accumulates another QueryStats into the receiver, which is useful when
// summarizing several queries issued against the same tree.
func (s *QueryStats) Add(other QueryStats) {
	s.VisitedNodes += other.VisitedNodes
	s.VisitedLeaves += other.VisitedLeaves
	s.VisitedPoints += other.VisitedPoints
	s.ComparedNodes += other.ComparedNodes
}
