// File: subgraph.go
// Role: independent subgraph extraction and whole-graph cloning.
//
// Both constructors return graphs sharing no mutable state with the
// source: fresh schema, fresh stores, fresh adjacency, copied values.
package core

// Subgraph builds a new, fully independent Graph restricted to the given
// nodes and the edges strictly between them.
//
// The new graph declares the same node and edge attribute layout as the
// source. Each listed node is copied under a freshly allocated identifier
// (no identifier continuity with the source); duplicates in ids are
// ignored after the first occurrence. Every source edge whose Start AND
// End both name listed nodes is copied between the corresponding new
// nodes, in source insertion order; edges with only one endpoint inside
// the set are silently excluded. An id not naming a live node fails with
// ErrUnknownID and nothing is returned.
// Complexity: O(N + E).
func (g *Graph) Subgraph(ids ...ID) (*Graph, error) {
	sub, err := New(g.schema.nodeAttrs, g.schema.edgeAttrs)
	if err != nil {
		// The source schema already passed New once.
		return nil, err
	}

	// Copy nodes, remembering old → new identifiers.
	remap := make(map[ID]ID, len(ids))
	for _, id := range ids {
		if _, dup := remap[id]; dup {
			continue
		}
		n, ok := g.nodes.get(id)
		if !ok {
			return nil, unknownID(id)
		}
		nid, addErr := sub.AddNode(n.Attrs())
		if addErr != nil {
			return nil, addErr
		}
		remap[id] = nid
	}

	// Copy the edges with both endpoints inside the set, rewired to the
	// new node identifiers.
	for _, eid := range g.edges.order {
		e := g.edges.recs[eid]
		ns, inStart := remap[e.Start]
		ne, inEnd := remap[e.End]
		if !inStart || !inEnd {
			continue
		}
		if _, addErr := sub.AddEdge(ns, ne, e.Attrs()); addErr != nil {
			return nil, addErr
		}
	}

	return sub, nil
}

// Clone returns a deep, fully independent copy of the Graph: schema
// layout, stores, adjacency index, and identifier free lists. Unlike
// Subgraph, identifiers are preserved, so records, dangling edges, and
// future allocations behave identically on both copies.
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	clone, _ := New(g.schema.nodeAttrs, g.schema.edgeAttrs)

	clone.nodes.order = append([]ID(nil), g.nodes.order...)
	for id, n := range g.nodes.recs {
		values := make([]any, len(n.values))
		copy(values, n.values)
		clone.nodes.recs[id] = Node{schema: clone.schema, values: values}
	}

	clone.edges.order = append([]ID(nil), g.edges.order...)
	for id, e := range g.edges.recs {
		values := make([]any, len(e.values))
		copy(values, e.values)
		clone.edges.recs[id] = Edge{Start: e.Start, End: e.End, schema: clone.schema, values: values}
	}

	for nid, set := range g.adjacency {
		cset := make(map[ID]struct{}, len(set))
		for eid := range set {
			cset[eid] = struct{}{}
		}
		clone.adjacency[nid] = cset
	}

	clone.freeNodeIDs = append([]ID(nil), g.freeNodeIDs...)
	clone.freeEdgeIDs = append([]ID(nil), g.freeEdgeIDs...)

	return clone
}
