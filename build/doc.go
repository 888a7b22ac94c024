// Package build assembles common graph topologies on top of core.
//
// What:
//   - One orchestrator, Graph, that creates a core.Graph and applies
//     topology constructors in order.
//   - Constructors for paths, cycles, stars and complete graphs, each
//     returning the identifiers of the nodes it created.
//   - Functional options supplying attribute values for the nodes and
//     edges a constructor emits.
//
// Determinism:
//   - Constructors add nodes in ascending index order and emit edges in
//     a fixed, documented order, so the same inputs always produce the
//     same graph, identifier for identifier.
//
// Attributes:
//   - By default constructors pass nil attribute maps, which fits a
//     graph declared with empty schemas. Graphs with declared
//     attributes need WithNodeAttrs / WithEdgeAttrs functions that
//     return a value for every declared name.
//
// Errors:
//   - Constructors return sentinel errors (ErrTooFewNodes,
//     ErrNilConstructor) or wrapped core errors; they never panic.
package build
