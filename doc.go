// Package schemagraph is a schema-flexible, in-memory graph container:
// declare the attributes your nodes and edges carry once, then add, query,
// mutate, and traverse elements through opaque integer identifiers.
//
// What you get:
//
//	• Declared schemas: per-graph attribute layouts for nodes and edges,
//	  fixed at construction and validated on every write
//	• Opaque identifiers: positive IDs name nodes, negative IDs name edges,
//	  with LIFO recycling after removal
//	• Immutable records: modification replaces the record under the same ID,
//	  never mutates in place
//	• Outgoing-edge adjacency kept consistent with every mutation
//	• Lazy attribute search and lazy worklist traversal (DFS/BFS) built on
//	  a single parameterized algorithm
//	• Independent subgraph extraction and deep cloning
//
// Everything is organized under three subpackages:
//
//	core/     - Graph, Schema, Node, Edge, identifier allocation, mutation,
//	            search, subgraphs, cloning
//	traverse/ - generalized frontier traversal with pluggable selectors
//	            (depth-first and breadth-first included)
//	build/    - deterministic topology constructors (paths, cycles, stars,
//	            complete graphs) for fixtures and quick starts
//
// A Graph is not safe for concurrent use; serialize access externally if
// you share one across goroutines. Edge endpoints are deliberately not
// checked against the node store: removing a node leaves its edges in
// place (dangling), and managing that state is the caller's job.
//
//	go get github.com/quenric/schemagraph
package schemagraph
