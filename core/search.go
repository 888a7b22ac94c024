// File: search.go
// Role: linear-scan attribute search over live records.
package core

import "iter"

// SearchNodes returns a lazy sequence of the live node records matching
// pred: a record is yielded (once) as soon as ANY supplied attribute name
// equals the record's value - a union over the predicates, not a
// conjunction. Names outside the node schema never match.
//
// The scan runs in store insertion order, starts fresh on every call, and
// observes the store as it is while being consumed; it is not a persistent
// view. Complexity: O(N·P) for P predicate attributes.
func (g *Graph) SearchNodes(pred map[string]any) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, id := range g.nodes.order {
			if n := g.nodes.recs[id]; n.matches(pred) {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// SearchEdges is SearchNodes over the edge store. The implicit "start"
// and "end" endpoints participate as ordinary predicate names (compare
// against core.ID values).
func (g *Graph) SearchEdges(pred map[string]any) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, id := range g.edges.order {
			if e := g.edges.recs[id]; e.matches(pred) {
				if !yield(e) {
					return
				}
			}
		}
	}
}
