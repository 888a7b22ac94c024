// Package core: central types (ID, Schema, Node, Edge, Graph), sentinel
// errors, and the New constructor.
package core

import (
	"errors"
	"fmt"
)

// Reserved edge attribute names, implicitly present on every edge.
const (
	// AttrStart is the implicit edge attribute naming the source node ID.
	AttrStart = "start"

	// AttrEnd is the implicit edge attribute naming the destination node ID.
	AttrEnd = "end"
)

// Sentinel errors for core graph operations.
var (
	// ErrSchemaMismatch indicates that a supplied attribute set does not
	// exactly match the declared schema. The wrapped message names the
	// missing and unexpected fields.
	ErrSchemaMismatch = errors.New("core: attribute set does not match schema")

	// ErrUnknownID indicates an operation referenced an identifier that is
	// not present in the relevant store.
	ErrUnknownID = errors.New("core: unknown identifier")

	// ErrBadAttribute indicates an invalid attribute name in a schema
	// declaration (empty, duplicated, or reserved).
	ErrBadAttribute = errors.New("core: bad attribute name")

	// ErrBadEndpoint indicates a start/end value that is not a core.ID.
	ErrBadEndpoint = errors.New("core: edge endpoint must be a core.ID")
)

// ID is an opaque signed identifier naming one element of one Graph.
// Positive values (1, 2, 3, …) name nodes; negative values (-1, -2, -3, …)
// name edges. Zero is never issued. IDs from different Graph instances are
// not comparable.
type ID int64

// IsNode reports whether id names a node (id > 0).
func (id ID) IsNode() bool { return id > 0 }

// IsEdge reports whether id names an edge (id < 0).
func (id ID) IsEdge() bool { return id < 0 }

// Schema is the fixed, ordered attribute layout of one Graph: one name
// list for nodes and one for edges. Edge records additionally carry the
// implicit "start" and "end" endpoints, which must not appear in the
// declared edge list. A Schema is immutable after New.
type Schema struct {
	nodeAttrs []string
	edgeAttrs []string

	// name → position in the corresponding values slice
	nodeIndex map[string]int
	edgeIndex map[string]int
}

// NodeAttrs returns a copy of the declared node attribute names, in order.
func (s *Schema) NodeAttrs() []string {
	out := make([]string, len(s.nodeAttrs))
	copy(out, s.nodeAttrs)

	return out
}

// EdgeAttrs returns a copy of the declared edge attribute names, in order.
// The implicit "start" and "end" endpoints are not included.
func (s *Schema) EdgeAttrs() []string {
	out := make([]string, len(s.edgeAttrs))
	copy(out, s.edgeAttrs)

	return out
}

// Node is an immutable record of node attribute values, addressed only by
// its ID. Attribute values should be comparable with == (strings, numbers,
// booleans, comparable structs); equality and search rely on it.
type Node struct {
	schema *Schema
	values []any
}

// Edge is an immutable record of an edge: its endpoints plus the declared
// edge attribute values. Start and End are node IDs by convention but are
// never validated against the node store (dangling endpoints are legal).
type Edge struct {
	// Start is the source node ID; the adjacency index is keyed by it.
	Start ID

	// End is the destination node ID.
	End ID

	schema *Schema
	values []any
}

// Graph is the schema-flexible in-memory graph container.
//
// It owns a Schema, two insertion-ordered entity stores (nodes, edges),
// an outgoing-edge adjacency index, and two LIFO identifier free lists.
// Not safe for concurrent use.
type Graph struct {
	schema *Schema

	nodes *store[Node]
	edges *store[Edge]

	// adjacency[n] = set of edge IDs e with edges[e].Start == n.
	// Absent keys read as empty; RemoveNode discards the whole entry.
	adjacency map[ID]map[ID]struct{}

	// LIFO free lists of recycled identifiers, by kind.
	freeNodeIDs []ID
	freeEdgeIDs []ID
}

// New creates an empty Graph with the given node and edge attribute
// layouts. Attribute names must be non-empty and unique within their list;
// the edge list must not contain the reserved names "start" or "end".
// Complexity: O(A) for A declared attributes.
func New(nodeAttrs, edgeAttrs []string) (*Graph, error) {
	s := &Schema{
		nodeAttrs: make([]string, 0, len(nodeAttrs)),
		edgeAttrs: make([]string, 0, len(edgeAttrs)),
		nodeIndex: make(map[string]int, len(nodeAttrs)),
		edgeIndex: make(map[string]int, len(edgeAttrs)),
	}

	var name string
	for _, name = range nodeAttrs {
		if name == "" {
			return nil, fmt.Errorf("%w: empty node attribute", ErrBadAttribute)
		}
		if _, dup := s.nodeIndex[name]; dup {
			return nil, fmt.Errorf("%w: duplicate node attribute %q", ErrBadAttribute, name)
		}
		s.nodeIndex[name] = len(s.nodeAttrs)
		s.nodeAttrs = append(s.nodeAttrs, name)
	}
	for _, name = range edgeAttrs {
		if name == "" {
			return nil, fmt.Errorf("%w: empty edge attribute", ErrBadAttribute)
		}
		if name == AttrStart || name == AttrEnd {
			return nil, fmt.Errorf("%w: %q is reserved on edges", ErrBadAttribute, name)
		}
		if _, dup := s.edgeIndex[name]; dup {
			return nil, fmt.Errorf("%w: duplicate edge attribute %q", ErrBadAttribute, name)
		}
		s.edgeIndex[name] = len(s.edgeAttrs)
		s.edgeAttrs = append(s.edgeAttrs, name)
	}

	return &Graph{
		schema:    s,
		nodes:     newStore[Node](),
		edges:     newStore[Edge](),
		adjacency: make(map[ID]map[ID]struct{}),
	}, nil
}

// Schema returns the graph's attribute layout. The returned Schema is
// shared and immutable.
func (g *Graph) Schema() *Schema { return g.schema }

// unknownID builds the canonical lookup failure for id.
func unknownID(id ID) error {
	return fmt.Errorf("%w: %d", ErrUnknownID, id)
}
