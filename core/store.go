// File: store.go
// Role: insertion-ordered entity store shared by the node and edge catalogs.
//
// Search and enumeration promise insertion order, which a bare Go map
// cannot provide; the store therefore keeps an ordered key slice beside
// the record map.
package core

// store maps IDs to immutable records while remembering insertion order.
// Reinserting an existing ID (replace-on-modify) keeps its original
// position.
type store[R any] struct {
	order []ID
	recs  map[ID]R
}

func newStore[R any]() *store[R] {
	return &store[R]{recs: make(map[ID]R)}
}

// get returns the record for id, if present.
func (s *store[R]) get(id ID) (R, bool) {
	r, ok := s.recs[id]

	return r, ok
}

// insert creates or overwrites the record under id. New IDs append to the
// iteration order; existing IDs keep their position.
func (s *store[R]) insert(id ID, r R) {
	if _, exists := s.recs[id]; !exists {
		s.order = append(s.order, id)
	}
	s.recs[id] = r
}

// remove evicts id and returns its record. O(len) for the order slice.
func (s *store[R]) remove(id ID) (R, bool) {
	r, ok := s.recs[id]
	if !ok {
		return r, false
	}
	delete(s.recs, id)
	for i, cur := range s.order {
		if cur == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return r, true
}

// len reports the number of live records.
func (s *store[R]) len() int { return len(s.recs) }

// ids returns a copy of the live IDs in insertion order.
func (s *store[R]) ids() []ID {
	out := make([]ID, len(s.order))
	copy(out, s.order)

	return out
}
