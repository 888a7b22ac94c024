// File: adjacency.go
// Role: outgoing-edge adjacency index and its read surface.
//
// Invariant: adjacency[n] == {e : edges[e].Start == n} at every observable
// point. The mutators below are called inside the same operation as the
// store change they accompany, never on their own. The one sanctioned gap:
// onNodeRemoved discards the whole entry for a deleted node even though
// edges starting there may survive (the documented dangling-edge state).
package core

import "sort"

// onEdgeAdded records id under adjacency[start].
func (g *Graph) onEdgeAdded(id, start ID) {
	set, ok := g.adjacency[start]
	if !ok {
		set = make(map[ID]struct{})
		g.adjacency[start] = set
	}
	set[id] = struct{}{}
}

// onEdgeRelocated moves id from adjacency[oldStart] to adjacency[newStart].
// No-op when the endpoints coincide.
func (g *Graph) onEdgeRelocated(id, oldStart, newStart ID) {
	if oldStart == newStart {
		return
	}
	g.onEdgeRemoved(id, oldStart)
	g.onEdgeAdded(id, newStart)
}

// onEdgeRemoved drops id from adjacency[start]. Removing from an absent
// entry is a no-op: the entry may already have been discarded by a node
// removal.
func (g *Graph) onEdgeRemoved(id, start ID) {
	set, ok := g.adjacency[start]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(g.adjacency, start)
	}
}

// onNodeRemoved discards the entire adjacency entry for id. Edges elsewhere
// that reference id are left untouched.
func (g *Graph) onNodeRemoved(id ID) {
	delete(g.adjacency, id)
}

// OutgoingEdgeIDs returns the IDs of the edges whose Start equals id, in
// descending ID order - allocation order, as long as no edge identifier
// was recycled. Unknown or removed IDs yield an empty slice, never an
// error. Complexity: O(k log k) for k outgoing edges.
func (g *Graph) OutgoingEdgeIDs(id ID) []ID {
	set := g.adjacency[id]
	out := make([]ID, 0, len(set))
	for eid := range set {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })

	return out
}

// OutgoingEdges returns the edge records whose Start equals id, in the
// same order as OutgoingEdgeIDs.
func (g *Graph) OutgoingEdges(id ID) []Edge {
	ids := g.OutgoingEdgeIDs(id)
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		if e, ok := g.edges.get(eid); ok {
			out = append(out, e)
		}
	}

	return out
}

// AdjacentNodeIDs returns the node IDs reachable from id in one hop: id
// itself first, then the End of each outgoing edge in OutgoingEdgeIDs
// order. Ends are not checked against the node store, so dangling
// neighbors appear here, and a neighbor reached by parallel edges appears
// once per edge. This is the neighbor enumeration the traversal engine
// consumes.
func (g *Graph) AdjacentNodeIDs(id ID) []ID {
	eids := g.OutgoingEdgeIDs(id)
	out := make([]ID, 0, len(eids)+1)
	out = append(out, id)
	for _, eid := range eids {
		if e, ok := g.edges.get(eid); ok {
			out = append(out, e.End)
		}
	}

	return out
}
