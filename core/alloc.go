// File: alloc.go
// Role: identifier allocation and recycling.
//
// Invariants:
//   - No ID is ever issued twice while its element is live.
//   - The most recently released ID of a kind is the next one issued
//     (LIFO reuse); with an empty free list, issuance is the smallest
//     unused magnitude, count+1.
package core

// allocNodeID issues the next node identifier: the top of the node free
// list if any, otherwise len(nodes)+1. The caller must insert a record
// under the returned ID before the next allocation.
func (g *Graph) allocNodeID() ID {
	if n := len(g.freeNodeIDs); n > 0 {
		id := g.freeNodeIDs[n-1]
		g.freeNodeIDs = g.freeNodeIDs[:n-1]

		return id
	}

	return ID(g.nodes.len() + 1)
}

// allocEdgeID issues the next edge identifier: the top of the edge free
// list if any, otherwise -(len(edges)+1).
func (g *Graph) allocEdgeID() ID {
	if n := len(g.freeEdgeIDs); n > 0 {
		id := g.freeEdgeIDs[n-1]
		g.freeEdgeIDs = g.freeEdgeIDs[:n-1]

		return id
	}

	return -ID(g.edges.len() + 1)
}

// release returns id to the free list matching its sign.
func (g *Graph) release(id ID) {
	if id.IsNode() {
		g.freeNodeIDs = append(g.freeNodeIDs, id)
	} else {
		g.freeEdgeIDs = append(g.freeEdgeIDs, id)
	}
}
