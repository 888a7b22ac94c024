package build

import (
	"errors"
	"fmt"

	"github.com/quenric/schemagraph/core"
)

// ErrTooFewNodes reports a node count below the minimum the requested
// topology needs.
var ErrTooFewNodes = errors.New("build: too few nodes")

// ErrNilConstructor reports a nil Constructor passed to Graph.
var ErrNilConstructor = errors.New("build: nil constructor")

// config carries the attribute strategies resolved from Options.
// It is passed by value to constructors.
type config struct {
	// nodeAttrs maps a constructor-local node index to the attribute
	// values for that node.
	nodeAttrs func(i int) map[string]any
	// edgeAttrs maps a pair of constructor-local node indices to the
	// attribute values for the edge between them.
	edgeAttrs func(u, v int) map[string]any
}

// Option adjusts how constructors fill in attribute values.
type Option func(*config)

// WithNodeAttrs sets the attribute source for created nodes. The index
// is local to each constructor, starting at zero.
func WithNodeAttrs(fn func(i int) map[string]any) Option {
	return func(c *config) { c.nodeAttrs = fn }
}

// WithEdgeAttrs sets the attribute source for created edges. Indices
// are the constructor-local indices of the edge endpoints.
func WithEdgeAttrs(fn func(u, v int) map[string]any) Option {
	return func(c *config) { c.edgeAttrs = fn }
}

func newConfig(opts ...Option) config {
	cfg := config{
		nodeAttrs: func(int) map[string]any { return nil },
		edgeAttrs: func(int, int) map[string]any { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Constructor applies one deterministic topology to a graph. A nil
// return means the constructor added everything it promised.
type Constructor func(g *core.Graph, cfg config) error

// Graph creates a core.Graph with the given schemas, resolves opts
// once, and applies the constructors in order. The first failing
// constructor aborts the build; no partial cleanup is attempted.
func Graph(nodeAttrs, edgeAttrs []string, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g, err := core.New(nodeAttrs, edgeAttrs)
	if err != nil {
		return nil, fmt.Errorf("build.Graph: %w", err)
	}
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("build.Graph: constructor %d: %w", i, ErrNilConstructor)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("build.Graph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts n nodes and returns their identifiers in index order.
func addNodes(g *core.Graph, cfg config, method string, n int) ([]core.ID, error) {
	ids := make([]core.ID, n)
	for i := 0; i < n; i++ {
		id, err := g.AddNode(cfg.nodeAttrs(i))
		if err != nil {
			return nil, fmt.Errorf("%s: node %d: %w", method, i, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addEdge wires ids[u] to ids[v] with attributes from cfg.
func addEdge(g *core.Graph, cfg config, method string, ids []core.ID, u, v int) error {
	if _, err := g.AddEdge(ids[u], ids[v], cfg.edgeAttrs(u, v)); err != nil {
		return fmt.Errorf("%s: edge %d->%d: %w", method, u, v, err)
	}

	return nil
}
