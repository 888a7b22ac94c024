package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quenric/schemagraph/core"
)

func TestSubgraph_NodesAndInternalEdgesOnly(t *testing.T) {
	g, _ := core.New([]string{"city"}, []string{"distance"})
	a, _ := g.AddNode(map[string]any{"city": "a"})
	b, _ := g.AddNode(map[string]any{"city": "b"})
	c, _ := g.AddNode(map[string]any{"city": "c"})
	g.AddEdge(a, b, map[string]any{"distance": 1}) // inside
	g.AddEdge(b, a, map[string]any{"distance": 2}) // inside
	g.AddEdge(a, c, map[string]any{"distance": 3}) // one endpoint out
	g.AddEdge(c, b, map[string]any{"distance": 4}) // one endpoint out

	sub, err := g.Subgraph(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 2, sub.NodeCount())
	assert.Equal(t, 2, sub.EdgeCount())

	var dists []int
	for _, e := range sub.Edges() {
		d, _ := e.Get("distance")
		dists = append(dists, d.(int))
	}
	assert.Equal(t, []int{1, 2}, dists, "boundary-crossing edges silently excluded")
}

func TestSubgraph_IdentifiersAreIndependent(t *testing.T) {
	g, _ := core.New([]string{"city"}, nil)
	// burn a few identifiers so the interesting nodes sit high
	for _, c := range []string{"x", "y", "z"} {
		g.AddNode(map[string]any{"city": c})
	}
	d, _ := g.AddNode(map[string]any{"city": "d"})
	e, _ := g.AddNode(map[string]any{"city": "e"})

	sub, err := g.Subgraph(d, e)
	assert.NoError(t, err)
	assert.Equal(t, []core.ID{1, 2}, sub.NodeIDs(), "fresh allocation, no continuity with the source")

	// supplied order decides the new numbering
	n1, _ := sub.Node(1)
	city, _ := n1.Get("city")
	assert.Equal(t, "d", city)
}

func TestSubgraph_EdgesRewiredToNewNodes(t *testing.T) {
	g, _ := core.New([]string{"city"}, nil)
	g.AddNode(map[string]any{"city": "filler"})
	u, _ := g.AddNode(map[string]any{"city": "u"}) // 2
	v, _ := g.AddNode(map[string]any{"city": "v"}) // 3
	g.AddEdge(u, v, nil)

	sub, err := g.Subgraph(u, v)
	assert.NoError(t, err)
	e, err := sub.Edge(-1)
	assert.NoError(t, err)
	assert.Equal(t, core.ID(1), e.Start, "endpoints renumbered into the new graph")
	assert.Equal(t, core.ID(2), e.End)
}

func TestSubgraph_Errors(t *testing.T) {
	g, _ := core.New([]string{"city"}, nil)
	a, _ := g.AddNode(map[string]any{"city": "a"})

	_, err := g.Subgraph(a, 99)
	assert.ErrorIs(t, err, core.ErrUnknownID)

	// duplicates collapse; the subgraph holds |S| nodes, not |args|
	sub, err := g.Subgraph(a, a, a)
	assert.NoError(t, err)
	assert.Equal(t, 1, sub.NodeCount())
}

func TestSubgraph_FullyIndependentStorage(t *testing.T) {
	g, _ := core.New([]string{"city"}, []string{"distance"})
	a, _ := g.AddNode(map[string]any{"city": "a"})
	b, _ := g.AddNode(map[string]any{"city": "b"})
	g.AddEdge(a, b, map[string]any{"distance": 1})

	sub, _ := g.Subgraph(a, b)

	// mutate the source; the subgraph must not notice
	g.ModifyNode(a, map[string]any{"city": "changed"})
	g.RemoveNode(b)
	n, _ := sub.Node(1)
	city, _ := n.Get("city")
	assert.Equal(t, "a", city)
	assert.Equal(t, 2, sub.NodeCount())

	// and the other way around
	sub.RemoveEdge(-1)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestClone_PreservesIdentifiersAndFreeLists(t *testing.T) {
	g, _ := core.New([]string{"city"}, []string{"distance"})
	a, _ := g.AddNode(map[string]any{"city": "a"})
	b, _ := g.AddNode(map[string]any{"city": "b"})
	c, _ := g.AddNode(map[string]any{"city": "c"})
	e, _ := g.AddEdge(a, b, map[string]any{"distance": 1})
	g.RemoveNode(c) // leaves c on the free list

	clone := g.Clone()

	assert.Equal(t, g.NodeIDs(), clone.NodeIDs())
	assert.Equal(t, g.EdgeIDs(), clone.EdgeIDs())
	ne, _ := clone.Edge(e)
	assert.Equal(t, a, ne.Start)

	// both copies recycle the same freed identifier next
	ga, _ := g.AddNode(map[string]any{"city": "g"})
	ca, _ := clone.AddNode(map[string]any{"city": "c"})
	assert.Equal(t, c, ga)
	assert.Equal(t, c, ca)
}

func TestClone_Independence(t *testing.T) {
	g, _ := core.New([]string{"city"}, nil)
	a, _ := g.AddNode(map[string]any{"city": "a"})
	b, _ := g.AddNode(map[string]any{"city": "b"})
	g.AddEdge(a, b, nil)

	clone := g.Clone()
	g.ModifyNode(a, map[string]any{"city": "mutated"})
	g.RemoveEdge(-1)

	n, _ := clone.Node(a)
	city, _ := n.Get("city")
	assert.Equal(t, "a", city)
	assert.Equal(t, 1, clone.EdgeCount())
	assert.Equal(t, []core.ID{-1}, clone.OutgoingEdgeIDs(a))
}
