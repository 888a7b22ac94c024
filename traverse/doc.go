// Package traverse walks a core.Graph with one generalized worklist
// algorithm, parameterized by a Selector that decides which frontier
// identifier to take next.
//
// What
//
//   - Walk(g, root, selector) seeds a frontier with the root and then
//     repeats: the selector removes one identifier from the frontier, it
//     is yielded and marked visited, and each one-hop neighbor not already
//     visited or pending is appended.
//   - TakeNewest removes from the back of the frontier (stack discipline)
//     → depth-first order; TakeOldest removes from the front (queue
//     discipline) → breadth-first, level by level. DepthFirst and
//     BreadthFirst wrap Walk with these selectors.
//   - Neighbor enumeration is core.AdjacentNodeIDs: a node's own
//     identifier first, then the End of each outgoing edge. The self
//     neighbor is always already visited, so it never re-enters the
//     frontier, but the enumeration order is part of the contract.
//
// Laziness
//
//	Walk returns an iter.Seq that does no work until ranged over and
//	stops cleanly when the consumer breaks; it never mutates the graph.
//	The sequence is single-use: range over it once.
//
// Dangling identifiers
//
//	Edge Ends are not checked against the node store. A dangling End is
//	yielded like any reachable identifier and simply has no outgoing
//	edges of its own.
//
// Determinism & complexity
//
//	Neighbor order follows the core's deterministic outgoing-edge order,
//	so both walks are reproducible for a fixed mutation history. Visited
//	and frontier membership are hash sets, giving O(1) checks and
//	O(V + E) per full walk.
//
// Errors
//
//   - ErrGraphNil      if the graph pointer is nil.
//   - ErrNilSelector   if the selector is nil.
//   - ErrRootNotFound  if root is not a live node identifier.
package traverse
