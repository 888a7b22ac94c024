// File: records.go
// Role: read-only accessors and equality for Node and Edge records.
//
// Records are value types sharing an immutable values slice; nothing here
// mutates, and nothing hands out a reference through which a caller could.
package core

import "fmt"

// equalValue compares two attribute values. Attribute values are required
// to be ==-comparable (strings, numbers, booleans, comparable structs).
func equalValue(a, b any) bool { return a == b }

// Get returns the value of the named node attribute.
// Unknown names fail with ErrSchemaMismatch.
func (n Node) Get(name string) (any, error) {
	idx, ok := n.schema.nodeIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: unexpected fields [%s]", ErrSchemaMismatch, name)
	}

	return n.values[idx], nil
}

// Attrs returns the node's attributes as a fresh name → value map.
func (n Node) Attrs() map[string]any {
	out := make(map[string]any, len(n.values))
	for i, name := range n.schema.nodeAttrs {
		out[name] = n.values[i]
	}

	return out
}

// Equal reports whether two node records carry equal attribute values,
// position by position. Identifiers play no part: two distinct live nodes
// may be Equal.
func (n Node) Equal(other Node) bool {
	if len(n.values) != len(other.values) {
		return false
	}
	for i := range n.values {
		if !equalValue(n.values[i], other.values[i]) {
			return false
		}
	}

	return true
}

// matches reports whether any supplied predicate attribute equals the
// record's value for that name. Names outside the schema never match.
func (n Node) matches(pred map[string]any) bool {
	for name, want := range pred {
		if idx, ok := n.schema.nodeIndex[name]; ok && equalValue(n.values[idx], want) {
			return true
		}
	}

	return false
}

// Get returns the value of the named edge attribute. The implicit "start"
// and "end" endpoints are readable here as well.
func (e Edge) Get(name string) (any, error) {
	switch name {
	case AttrStart:
		return e.Start, nil
	case AttrEnd:
		return e.End, nil
	}
	idx, ok := e.schema.edgeIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: unexpected fields [%s]", ErrSchemaMismatch, name)
	}

	return e.values[idx], nil
}

// Attrs returns the edge's declared attributes as a fresh name → value
// map. Endpoints are carried in Start/End, not in the map.
func (e Edge) Attrs() map[string]any {
	out := make(map[string]any, len(e.values))
	for i, name := range e.schema.edgeAttrs {
		out[name] = e.values[i]
	}

	return out
}

// Equal reports whether two edge records share endpoints and equal
// declared attribute values.
func (e Edge) Equal(other Edge) bool {
	if e.Start != other.Start || e.End != other.End {
		return false
	}
	if len(e.values) != len(other.values) {
		return false
	}
	for i := range e.values {
		if !equalValue(e.values[i], other.values[i]) {
			return false
		}
	}

	return true
}

// matches mirrors Node.matches; "start" and "end" participate as ordinary
// predicate names.
func (e Edge) matches(pred map[string]any) bool {
	for name, want := range pred {
		switch name {
		case AttrStart:
			if equalValue(any(e.Start), want) {
				return true
			}
		case AttrEnd:
			if equalValue(any(e.End), want) {
				return true
			}
		default:
			if idx, ok := e.schema.edgeIndex[name]; ok && equalValue(e.values[idx], want) {
				return true
			}
		}
	}

	return false
}
