package build

import (
	"fmt"

	"github.com/quenric/schemagraph/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds the path P_n: edges i-1 -> i for i = 1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the cycle C_n: the path edges plus the closing edge
// n-1 -> 0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star: node 0 is the hub, with an edge 0 -> i for every
// leaf i = 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodStar, ids, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds the complete directed graph on n nodes: one edge for
// every ordered pair u != v, emitted with u ascending, then v.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err = addEdge(g, cfg, methodComplete, ids, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
