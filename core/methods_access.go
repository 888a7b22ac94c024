// File: methods_access.go
// Role: sign-dispatched element access - the container-style surface over
// the typed node/edge methods (lookup by ID, whole-record replacement,
// deletion).
package core

import "fmt"

// Put replaces the whole record under an existing id with one built from
// attrs. For nodes, attrs must supply exactly the node schema. For edges,
// attrs must additionally supply "start" and "end" as core.ID values;
// a changed start relocates the edge in the adjacency index. The
// identifier keeps naming the element across the replacement.
func (g *Graph) Put(id ID, attrs map[string]any) error {
	switch {
	case id.IsNode():
		if _, ok := g.nodes.get(id); !ok {
			return unknownID(id)
		}
		n, err := g.schema.newNode(attrs)
		if err != nil {
			return err
		}
		g.nodes.insert(id, n)

		return nil

	case id.IsEdge():
		old, ok := g.edges.get(id)
		if !ok {
			return unknownID(id)
		}
		sv, ok := attrs[AttrStart]
		if !ok {
			return fmt.Errorf("%w: missing fields [%s]", ErrSchemaMismatch, AttrStart)
		}
		ev, ok := attrs[AttrEnd]
		if !ok {
			return fmt.Errorf("%w: missing fields [%s]", ErrSchemaMismatch, AttrEnd)
		}
		start, err := asID(sv)
		if err != nil {
			return err
		}
		end, err := asID(ev)
		if err != nil {
			return err
		}
		declared := make(map[string]any, len(attrs)-2)
		for name, v := range attrs {
			if name != AttrStart && name != AttrEnd {
				declared[name] = v
			}
		}
		e, err := g.schema.newEdge(start, end, declared)
		if err != nil {
			return err
		}
		g.edges.insert(id, e)
		g.onEdgeRelocated(id, old.Start, start)

		return nil
	}

	return unknownID(id)
}

// Delete removes the element under id, node or edge by sign, discarding
// the evicted record. Use RemoveNode/RemoveEdge when you need it back.
func (g *Graph) Delete(id ID) error {
	switch {
	case id.IsNode():
		_, err := g.RemoveNode(id)

		return err
	case id.IsEdge():
		_, err := g.RemoveEdge(id)

		return err
	}

	return unknownID(id)
}
