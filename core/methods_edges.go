// File: methods_edges.go
// Role: edge lifecycle (add, read, modify, remove) and edge enumeration.
//
// Every mutation here updates the adjacency index inside the same call as
// its store change; see adjacency.go for the invariant.
package core

import "fmt"

// AddEdge validates attrs against the edge schema, allocates an
// identifier, installs the record (start, end, attrs...), and indexes it
// under adjacency[start]. Neither endpoint is checked against the node
// store: dangling endpoints are legal and representable. On error the
// graph is unchanged and no identifier is consumed.
func (g *Graph) AddEdge(start, end ID, attrs map[string]any) (ID, error) {
	e, err := g.schema.newEdge(start, end, attrs)
	if err != nil {
		return 0, err
	}
	id := g.allocEdgeID()
	g.edges.insert(id, e)
	g.onEdgeAdded(id, start)

	return id, nil
}

// Edge returns the record stored under id.
func (g *Graph) Edge(id ID) (Edge, error) {
	e, ok := g.edges.get(id)
	if !ok {
		return Edge{}, unknownID(id)
	}

	return e, nil
}

// HasEdge reports whether an edge is stored under id.
func (g *Graph) HasEdge(id ID) bool {
	_, ok := g.edges.get(id)

	return ok
}

// ModifyEdge overwrites only the named attributes of the edge under id and
// installs the replacement under the same identifier. The implicit "start"
// and "end" names are accepted with core.ID values; changing "start"
// relocates the edge in the adjacency index before the call returns.
func (g *Graph) ModifyEdge(id ID, attrs map[string]any) (ID, error) {
	old, ok := g.edges.get(id)
	if !ok {
		return 0, unknownID(id)
	}

	// Validate names (and endpoint types) before touching anything.
	var err error
	start, end := old.Start, old.End
	for name, v := range attrs {
		switch name {
		case AttrStart:
			if start, err = asID(v); err != nil {
				return 0, err
			}
		case AttrEnd:
			if end, err = asID(v); err != nil {
				return 0, err
			}
		default:
			if _, ok = g.schema.edgeIndex[name]; !ok {
				return 0, fmt.Errorf("%w: unexpected fields [%s]", ErrSchemaMismatch, name)
			}
		}
	}

	values := make([]any, len(old.values))
	copy(values, old.values)
	for name, v := range attrs {
		if name == AttrStart || name == AttrEnd {
			continue
		}
		values[g.schema.edgeIndex[name]] = v
	}
	g.edges.insert(id, Edge{Start: start, End: end, schema: g.schema, values: values})
	g.onEdgeRelocated(id, old.Start, start)

	return id, nil
}

// RemoveEdge evicts the edge under id, unindexes it from adjacency using
// the removed record's Start, recycles the identifier, and returns the
// removed record.
func (g *Graph) RemoveEdge(id ID) (Edge, error) {
	e, ok := g.edges.remove(id)
	if !ok {
		return Edge{}, unknownID(id)
	}
	g.onEdgeRemoved(id, e.Start)
	g.release(id)

	return e, nil
}

// EdgeIDs returns all live edge identifiers in insertion order.
func (g *Graph) EdgeIDs() []ID { return g.edges.ids() }

// Edges returns all live edge records in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges.len())
	for _, id := range g.edges.order {
		out = append(out, g.edges.recs[id])
	}

	return out
}

// EdgeCount returns the number of live edges (the graph's size).
func (g *Graph) EdgeCount() int { return g.edges.len() }

// ContainsEdge reports whether any live edge record equals e.
// Membership is over records, not identifiers. Complexity: O(E·A).
func (g *Graph) ContainsEdge(e Edge) bool {
	for _, rec := range g.edges.recs {
		if rec.Equal(e) {
			return true
		}
	}

	return false
}
