// File: methods_nodes.go
// Role: node lifecycle (add, read, modify, remove) and node enumeration.
package core

import "fmt"

// AddNode validates attrs against the node schema, allocates an
// identifier, and installs the record. attrs must supply exactly the
// declared node attributes. On error the graph is unchanged and no
// identifier is consumed.
// Complexity: O(A) for A declared attributes.
func (g *Graph) AddNode(attrs map[string]any) (ID, error) {
	n, err := g.schema.newNode(attrs)
	if err != nil {
		return 0, err
	}
	id := g.allocNodeID()
	g.nodes.insert(id, n)

	return id, nil
}

// Node returns the record stored under id.
func (g *Graph) Node(id ID) (Node, error) {
	n, ok := g.nodes.get(id)
	if !ok {
		return Node{}, unknownID(id)
	}

	return n, nil
}

// HasNode reports whether a node is stored under id.
func (g *Graph) HasNode(id ID) bool {
	_, ok := g.nodes.get(id)

	return ok
}

// ModifyNode overwrites only the named attributes of the node under id and
// installs the replacement record under the same identifier; unmentioned
// attributes are untouched. Unknown names fail with ErrSchemaMismatch and
// leave the record as it was.
func (g *Graph) ModifyNode(id ID, attrs map[string]any) (ID, error) {
	n, ok := g.nodes.get(id)
	if !ok {
		return 0, unknownID(id)
	}

	// Validate every name before copying, so a bad call has no effect.
	for name := range attrs {
		if _, ok = g.schema.nodeIndex[name]; !ok {
			return 0, fmt.Errorf("%w: unexpected fields [%s]", ErrSchemaMismatch, name)
		}
	}

	values := make([]any, len(n.values))
	copy(values, n.values)
	for name, v := range attrs {
		values[g.schema.nodeIndex[name]] = v
	}
	g.nodes.insert(id, Node{schema: g.schema, values: values})

	return id, nil
}

// RemoveNode evicts the node under id, discards its adjacency entry,
// recycles the identifier, and returns the removed record.
//
// Edges whose Start or End references id are NOT removed: they stay in the
// edge store with a dangling endpoint, and edges starting at id are no
// longer reachable through adjacency lookups. Cascading is the caller's
// decision.
func (g *Graph) RemoveNode(id ID) (Node, error) {
	n, ok := g.nodes.remove(id)
	if !ok {
		return Node{}, unknownID(id)
	}
	g.onNodeRemoved(id)
	g.release(id)

	return n, nil
}

// NodeIDs returns all live node identifiers in insertion order.
func (g *Graph) NodeIDs() []ID { return g.nodes.ids() }

// Nodes returns all live node records in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.nodes.len())
	for _, id := range g.nodes.order {
		out = append(out, g.nodes.recs[id])
	}

	return out
}

// NodeCount returns the number of live nodes (the graph's order).
func (g *Graph) NodeCount() int { return g.nodes.len() }

// ContainsNode reports whether any live node record equals n.
// Membership is over records, not identifiers. Complexity: O(N·A).
func (g *Graph) ContainsNode(n Node) bool {
	for _, rec := range g.nodes.recs {
		if rec.Equal(n) {
			return true
		}
	}

	return false
}
