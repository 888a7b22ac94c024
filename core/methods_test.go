package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quenric/schemagraph/core"
)

// newCityGraph builds the schema used throughout these tests:
// nodes carry a "city", edges carry a "distance".
func newCityGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New([]string{"city"}, []string{"distance"})
	assert.NoError(t, err)

	return g
}

func TestAddNode_SequentialIdentifiers(t *testing.T) {
	g := newCityGraph(t)

	jimmy, err := g.AddNode(map[string]any{"city": "New York"})
	assert.NoError(t, err)
	ted, _ := g.AddNode(map[string]any{"city": "Atlanta"})
	dan, _ := g.AddNode(map[string]any{"city": "Seattle"})
	paul, _ := g.AddNode(map[string]any{"city": "Austin"})

	assert.Equal(t, core.ID(1), jimmy)
	assert.Equal(t, core.ID(2), ted)
	assert.Equal(t, core.ID(3), dan)
	assert.Equal(t, core.ID(4), paul)
	assert.Equal(t, 4, g.NodeCount())
}

func TestAddNode_SchemaMismatch(t *testing.T) {
	g := newCityGraph(t)

	_, err := g.AddNode(map[string]any{"name": "tim"})
	assert.ErrorIs(t, err, core.ErrSchemaMismatch)
	_, err = g.AddNode(nil)
	assert.ErrorIs(t, err, core.ErrSchemaMismatch)
	_, err = g.AddNode(map[string]any{"city": "LA", "mayor": "?"})
	assert.ErrorIs(t, err, core.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "mayor")

	// failed adds consume no identifiers
	id, err := g.AddNode(map[string]any{"city": "LA"})
	assert.NoError(t, err)
	assert.Equal(t, core.ID(1), id)
}

func TestRemoveNode_LIFOReuse(t *testing.T) {
	g := newCityGraph(t)
	g.AddNode(map[string]any{"city": "New York"})
	g.AddNode(map[string]any{"city": "Atlanta"})
	dan, _ := g.AddNode(map[string]any{"city": "Seattle"})
	g.AddNode(map[string]any{"city": "Austin"})

	removed, err := g.RemoveNode(dan)
	assert.NoError(t, err)
	city, _ := removed.Get("city")
	assert.Equal(t, "Seattle", city)

	// most recently freed identifier is issued next
	john, _ := g.AddNode(map[string]any{"city": "Chicago"})
	assert.Equal(t, dan, john)

	// with the free list drained, issuance falls back to count+1
	next, _ := g.AddNode(map[string]any{"city": "Boston"})
	assert.Equal(t, core.ID(5), next)
}

func TestRemoveNode_LIFOOrder(t *testing.T) {
	g := newCityGraph(t)
	var ids []core.ID
	for _, c := range []string{"a", "b", "c", "d"} {
		id, _ := g.AddNode(map[string]any{"city": c})
		ids = append(ids, id)
	}
	g.RemoveNode(ids[1]) // free: [2]
	g.RemoveNode(ids[3]) // free: [2 4]

	r1, _ := g.AddNode(map[string]any{"city": "x"})
	r2, _ := g.AddNode(map[string]any{"city": "y"})
	assert.Equal(t, ids[3], r1, "last freed comes back first")
	assert.Equal(t, ids[1], r2)
}

func TestAddEdge_NegativeIdentifiersAndReuse(t *testing.T) {
	g := newCityGraph(t)
	jimmy, _ := g.AddNode(map[string]any{"city": "New York"})
	ted, _ := g.AddNode(map[string]any{"city": "Atlanta"})
	dan, _ := g.AddNode(map[string]any{"city": "Seattle"})

	jt, err := g.AddEdge(jimmy, ted, map[string]any{"distance": 850})
	assert.NoError(t, err)
	td, _ := g.AddEdge(ted, dan, map[string]any{"distance": 2150})
	assert.Equal(t, core.ID(-1), jt)
	assert.Equal(t, core.ID(-2), td)

	_, err = g.RemoveEdge(jt)
	assert.NoError(t, err)
	again, _ := g.AddEdge(jimmy, ted, map[string]any{"distance": 850})
	assert.Equal(t, core.ID(-1), again)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_DanglingEndpointsAreLegal(t *testing.T) {
	g := newCityGraph(t)

	// no node store validation at all
	id, err := g.AddEdge(41, 42, map[string]any{"distance": 1})
	assert.NoError(t, err)
	e, _ := g.Edge(id)
	assert.Equal(t, core.ID(41), e.Start)
	assert.Equal(t, core.ID(42), e.End)
}

func TestModifyNode_PartialUpdate(t *testing.T) {
	g, err := core.New([]string{"name", "city"}, nil)
	assert.NoError(t, err)
	id, _ := g.AddNode(map[string]any{"name": "bill", "city": "Austin"})

	same, err := g.ModifyNode(id, map[string]any{"name": "bob"})
	assert.NoError(t, err)
	assert.Equal(t, id, same)

	n, _ := g.Node(id)
	name, _ := n.Get("name")
	city, _ := n.Get("city")
	assert.Equal(t, "bob", name)
	assert.Equal(t, "Austin", city, "unmentioned attribute unchanged")

	// unknown field names are rejected with no effect
	_, err = g.ModifyNode(id, map[string]any{"mustache": true})
	assert.ErrorIs(t, err, core.ErrSchemaMismatch)
	n, _ = g.Node(id)
	name, _ = n.Get("name")
	assert.Equal(t, "bob", name)
}

func TestModifyEdge_AttributesAndEndpoints(t *testing.T) {
	g := newCityGraph(t)
	a, _ := g.AddNode(map[string]any{"city": "a"})
	b, _ := g.AddNode(map[string]any{"city": "b"})
	c, _ := g.AddNode(map[string]any{"city": "c"})
	id, _ := g.AddEdge(a, b, map[string]any{"distance": 10})

	_, err := g.ModifyEdge(id, map[string]any{"distance": 20})
	assert.NoError(t, err)
	e, _ := g.Edge(id)
	d, _ := e.Get("distance")
	assert.Equal(t, 20, d)
	assert.Equal(t, a, e.Start)

	// changing "start" relocates the adjacency entry
	_, err = g.ModifyEdge(id, map[string]any{"start": c})
	assert.NoError(t, err)
	assert.Empty(t, g.OutgoingEdgeIDs(a))
	assert.Equal(t, []core.ID{id}, g.OutgoingEdgeIDs(c))

	// endpoint values must be core.ID
	_, err = g.ModifyEdge(id, map[string]any{"end": 7})
	assert.ErrorIs(t, err, core.ErrBadEndpoint)

	_, err = g.ModifyEdge(id, map[string]any{"speed": 1})
	assert.ErrorIs(t, err, core.ErrSchemaMismatch)
}

func TestRemoveNode_LeavesDanglingEdges(t *testing.T) {
	g := newCityGraph(t)
	bob, _ := g.AddNode(map[string]any{"city": "bobton"})
	bill, _ := g.AddNode(map[string]any{"city": "billville"})
	e, _ := g.AddEdge(bob, bill, map[string]any{"distance": 5})

	_, err := g.RemoveNode(bill)
	assert.NoError(t, err)

	// the edge survives with a dangling End
	rec, err := g.Edge(e)
	assert.NoError(t, err)
	assert.Equal(t, bill, rec.End)
	assert.False(t, g.HasNode(bill))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestUnknownIdentifierLookups(t *testing.T) {
	g := newCityGraph(t)

	_, err := g.Node(99)
	assert.ErrorIs(t, err, core.ErrUnknownID)
	_, err = g.Edge(-99)
	assert.ErrorIs(t, err, core.ErrUnknownID)
	_, err = g.ModifyNode(99, map[string]any{"city": "x"})
	assert.ErrorIs(t, err, core.ErrUnknownID)
	_, err = g.ModifyEdge(-99, map[string]any{"distance": 1})
	assert.ErrorIs(t, err, core.ErrUnknownID)
	_, err = g.RemoveNode(99)
	assert.ErrorIs(t, err, core.ErrUnknownID)
	_, err = g.RemoveEdge(-99)
	assert.ErrorIs(t, err, core.ErrUnknownID)
	assert.ErrorIs(t, g.Delete(0), core.ErrUnknownID)
	assert.ErrorIs(t, g.Put(0, nil), core.ErrUnknownID)
}

func TestPut_WholeRecordReplacement(t *testing.T) {
	g := newCityGraph(t)
	a, _ := g.AddNode(map[string]any{"city": "a"})
	b, _ := g.AddNode(map[string]any{"city": "b"})
	c, _ := g.AddNode(map[string]any{"city": "c"})
	e, _ := g.AddEdge(a, b, map[string]any{"distance": 1})

	// node: full attribute set required
	assert.NoError(t, g.Put(a, map[string]any{"city": "a2"}))
	n, _ := g.Node(a)
	city, _ := n.Get("city")
	assert.Equal(t, "a2", city)
	assert.ErrorIs(t, g.Put(a, map[string]any{}), core.ErrSchemaMismatch)

	// edge: endpoints required, start change relocates adjacency
	err := g.Put(e, map[string]any{"start": c, "end": b, "distance": 9})
	assert.NoError(t, err)
	rec, _ := g.Edge(e)
	assert.Equal(t, c, rec.Start)
	assert.Equal(t, []core.ID{e}, g.OutgoingEdgeIDs(c))
	assert.Empty(t, g.OutgoingEdgeIDs(a))

	assert.ErrorIs(t, g.Put(e, map[string]any{"distance": 9}), core.ErrSchemaMismatch)
	assert.ErrorIs(t, g.Put(e, map[string]any{"start": 1, "end": b, "distance": 9}), core.ErrBadEndpoint)
}

func TestDelete_SignDispatch(t *testing.T) {
	g := newCityGraph(t)
	a, _ := g.AddNode(map[string]any{"city": "a"})
	b, _ := g.AddNode(map[string]any{"city": "b"})
	e, _ := g.AddEdge(a, b, map[string]any{"distance": 1})

	assert.NoError(t, g.Delete(e))
	assert.False(t, g.HasEdge(e))
	assert.NoError(t, g.Delete(a))
	assert.False(t, g.HasNode(a))
	assert.ErrorIs(t, g.Delete(a), core.ErrUnknownID)
}

func TestContains_RecordMembership(t *testing.T) {
	g := newCityGraph(t)
	a, _ := g.AddNode(map[string]any{"city": "Austin"})
	b, _ := g.AddNode(map[string]any{"city": "Boston"})
	e, _ := g.AddEdge(a, b, map[string]any{"distance": 3})

	na, _ := g.Node(a)
	re, _ := g.Edge(e)
	assert.True(t, g.ContainsNode(na))
	assert.True(t, g.ContainsEdge(re))

	g.RemoveNode(a)
	assert.False(t, g.ContainsNode(na))
	// the edge record still exists (dangling), so membership holds
	assert.True(t, g.ContainsEdge(re))
}

func TestEnumeration_InsertionOrder(t *testing.T) {
	g := newCityGraph(t)
	var want []core.ID
	for _, c := range []string{"a", "b", "c", "d", "e"} {
		id, _ := g.AddNode(map[string]any{"city": c})
		want = append(want, id)
	}
	assert.Equal(t, want, g.NodeIDs())

	// removal keeps the relative order of the survivors
	g.RemoveNode(want[2])
	assert.Equal(t, []core.ID{want[0], want[1], want[3], want[4]}, g.NodeIDs())

	// a recycled identifier re-enters at the back of the order
	reused, _ := g.AddNode(map[string]any{"city": "f"})
	assert.Equal(t, want[2], reused)
	assert.Equal(t, []core.ID{want[0], want[1], want[3], want[4], reused}, g.NodeIDs())

	cities := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		c, _ := n.Get("city")
		cities = append(cities, c.(string))
	}
	assert.Equal(t, []string{"a", "b", "d", "e", "f"}, cities)
}

func TestModify_NoInPlaceMutation(t *testing.T) {
	g := newCityGraph(t)
	id, _ := g.AddNode(map[string]any{"city": "before"})
	snapshot, _ := g.Node(id)

	g.ModifyNode(id, map[string]any{"city": "after"})

	// the previously fetched record is an immutable snapshot
	c, _ := snapshot.Get("city")
	assert.Equal(t, "before", c)
	current, _ := g.Node(id)
	c, _ = current.Get("city")
	assert.Equal(t, "after", c)
}
