// Package core implements the schema-flexible graph container: Graph,
// Schema, Node, and Edge, plus identifier allocation, mutation, attribute
// search, subgraph extraction, and cloning.
//
// What
//
//   - New(nodeAttrs, edgeAttrs) declares the attribute layout once; every
//     node carries exactly the node attributes, every edge carries start,
//     end, and exactly the edge attributes.
//   - Elements are addressed by opaque ID values: positive for nodes,
//     negative for edges. IDs are recycled last-in-first-out after removal
//     and are never live twice at once.
//   - Records are immutable: ModifyNode/ModifyEdge build a replacement
//     record and install it under the same ID.
//   - The adjacency index maps each node ID to the set of edge IDs whose
//     Start equals it, and is updated inside every mutating operation.
//   - SearchNodes/SearchEdges lazily scan live records in insertion order,
//     accepting a record as soon as any supplied attribute matches.
//   - Subgraph builds a new, fully independent Graph restricted to a node
//     set and the edges strictly between its members; Clone deep-copies
//     the whole Graph.
//
// Dangling edges
//
//	RemoveNode discards the node and its adjacency entry but does NOT
//	remove edges that reference the node. Such edges stay live and
//	searchable with endpoints that no longer resolve; this is documented,
//	permitted state, not an error. Cascade the removal yourself if your
//	application needs referential integrity.
//
// Concurrency
//
//	A Graph is a plain single-threaded data structure: no internal
//	locking, no goroutines, no I/O. Concurrent mutation is undefined
//	behavior; wrap the Graph in your own synchronization if you need it.
//
// Errors
//
//   - ErrSchemaMismatch - supplied attributes do not exactly match the
//     declared layout (missing, unexpected, or misnamed fields).
//   - ErrUnknownID      - the identifier is not present in the relevant
//     store.
//   - ErrBadAttribute   - invalid attribute name in a schema declaration.
//   - ErrBadEndpoint    - a start/end value that is not a core.ID.
//
// Complexity (N = nodes, E = edges)
//
//   - Add/Modify/Get: O(A) for A declared attributes.
//   - RemoveNode/RemoveEdge: O(N) / O(E) worst case (ordered-store
//     eviction), O(outgoing) adjacency upkeep.
//   - Search: O(N·P) / O(E·P) for P predicate attributes, lazily.
//   - Subgraph/Clone: O(N + E).
package core
