// File: schema.go
// Role: record construction and exact attribute-set validation.
//
// Every create path funnels through newNode/newEdge, so a record can only
// exist if its attribute set matched the schema exactly at construction.
package core

import (
	"fmt"
	"sort"
	"strings"
)

// checkExact verifies that attrs carries exactly the declared names: no
// omissions, no extras. On mismatch it returns ErrSchemaMismatch wrapped
// with the offending field names, sorted for stable messages.
func checkExact(declared []string, index map[string]int, attrs map[string]any) error {
	var missing, unexpected []string
	for _, name := range declared {
		if _, ok := attrs[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range attrs {
		if _, ok := index[name]; !ok {
			unexpected = append(unexpected, name)
		}
	}
	if missing == nil && unexpected == nil {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(unexpected)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing fields [%s]", strings.Join(missing, " ")))
	}
	if len(unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected fields [%s]", strings.Join(unexpected, " ")))
	}

	return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(parts, "; "))
}

// newNode builds an immutable Node from a complete attribute map.
func (s *Schema) newNode(attrs map[string]any) (Node, error) {
	if err := checkExact(s.nodeAttrs, s.nodeIndex, attrs); err != nil {
		return Node{}, err
	}
	values := make([]any, len(s.nodeAttrs))
	for i, name := range s.nodeAttrs {
		values[i] = attrs[name]
	}

	return Node{schema: s, values: values}, nil
}

// newEdge builds an immutable Edge from endpoints plus a complete declared
// attribute map. Endpoints are not validated against any node store.
func (s *Schema) newEdge(start, end ID, attrs map[string]any) (Edge, error) {
	if err := checkExact(s.edgeAttrs, s.edgeIndex, attrs); err != nil {
		return Edge{}, err
	}
	values := make([]any, len(s.edgeAttrs))
	for i, name := range s.edgeAttrs {
		values[i] = attrs[name]
	}

	return Edge{Start: start, End: end, schema: s, values: values}, nil
}

// asID coerces an endpoint value supplied through an attribute map.
func asID(v any) (ID, error) {
	id, ok := v.(ID)
	if !ok {
		return 0, fmt.Errorf("%w: got %T", ErrBadEndpoint, v)
	}

	return id, nil
}
