// File: traverse.go
// Role: the generalized worklist walk and its two standard instantiations.
package traverse

import (
	"iter"

	"github.com/quenric/schemagraph/core"
)

// walker holds the per-walk mutable state: the frontier and the visited
// set. Both memberships are hash-backed so every step costs O(1) beyond
// neighbor enumeration.
type walker struct {
	graph    *core.Graph
	sel      Selector
	frontier *Frontier
	visited  map[core.ID]struct{}
}

// Walk validates its inputs and returns a lazy, single-use sequence of
// node identifiers reachable from root, ordered by sel's removal
// discipline over the frontier. Each reachable identifier is yielded
// exactly once; an identifier already visited or already pending is never
// re-appended. The walk performs no mutation, so stopping early has no
// side effects.
func Walk(g *core.Graph, root core.ID, sel Selector) (iter.Seq[core.ID], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if sel == nil {
		return nil, ErrNilSelector
	}
	if !g.HasNode(root) {
		return nil, ErrRootNotFound
	}

	w := &walker{
		graph:    g,
		sel:      sel,
		frontier: newFrontier(),
		visited:  make(map[core.ID]struct{}),
	}
	w.frontier.push(root)

	return w.seq, nil
}

// DepthFirst walks from root diving along edges before backtracking
// (stack frontier).
func DepthFirst(g *core.Graph, root core.ID) (iter.Seq[core.ID], error) {
	return Walk(g, root, TakeNewest)
}

// BreadthFirst walks from root level by level: the root, its direct
// neighbors, then theirs (queue frontier).
func BreadthFirst(g *core.Graph, root core.ID) (iter.Seq[core.ID], error) {
	return Walk(g, root, TakeOldest)
}

// seq drives the worklist: select, mark visited, yield, append unseen
// one-hop neighbors.
func (w *walker) seq(yield func(core.ID) bool) {
	for w.frontier.Len() > 0 {
		id := w.sel(w.frontier)
		w.visited[id] = struct{}{}
		if !yield(id) {
			return
		}
		for _, nbr := range w.graph.AdjacentNodeIDs(id) {
			if _, seen := w.visited[nbr]; seen {
				continue
			}
			if w.frontier.Has(nbr) {
				continue
			}
			w.frontier.push(nbr)
		}
	}
}
