// Package traverse: Frontier worklist, Selector policies, and sentinel
// errors.
package traverse

import (
	"errors"

	"github.com/quenric/schemagraph/core"
)

// Sentinel errors for traversal setup.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrNilSelector is returned if Walk is given a nil selector.
	ErrNilSelector = errors.New("traverse: selector is nil")

	// ErrRootNotFound is returned when the root is not a live node ID.
	ErrRootNotFound = errors.New("traverse: root node not found")
)

// Selector removes and returns one identifier from a non-empty frontier,
// fixing the traversal order. Walk only invokes it while Len() > 0.
type Selector func(f *Frontier) core.ID

// TakeNewest is the stack discipline: remove the most recently appended
// identifier. Walking with it yields depth-first order.
func TakeNewest(f *Frontier) core.ID { return f.PopNewest() }

// TakeOldest is the queue discipline: remove the earliest appended
// identifier. Walking with it yields breadth-first order.
func TakeOldest(f *Frontier) core.ID { return f.PopOldest() }

// Frontier is the ordered pending-to-visit worklist. A companion hash set
// backs Has, so membership checks are O(1) regardless of length.
type Frontier struct {
	items  []core.ID
	member map[core.ID]struct{}
}

func newFrontier() *Frontier {
	return &Frontier{member: make(map[core.ID]struct{})}
}

// Len reports the number of pending identifiers.
func (f *Frontier) Len() int { return len(f.items) }

// Has reports whether id is pending.
func (f *Frontier) Has(id core.ID) bool {
	_, ok := f.member[id]

	return ok
}

// PopOldest removes and returns the front identifier.
// It must only be called when Len() > 0.
func (f *Frontier) PopOldest() core.ID {
	id := f.items[0]
	f.items = f.items[1:]
	delete(f.member, id)

	return id
}

// PopNewest removes and returns the back identifier.
// It must only be called when Len() > 0.
func (f *Frontier) PopNewest() core.ID {
	id := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	delete(f.member, id)

	return id
}

// push appends id. The walker guarantees id is neither visited nor
// already pending before calling.
func (f *Frontier) push(id core.ID) {
	f.items = append(f.items, id)
	f.member[id] = struct{}{}
}
