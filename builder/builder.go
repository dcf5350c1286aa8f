// Topology constructors. Each appends fresh vertices to the target graph
// and emits edges in a stable order.
package builder

import "github.com/ablomov/floe/digraph"

// Path appends n fresh vertices to g and connects them as the directed path
// v0→v1→…→v(n-1), returning the vertices in path order. n must be ≥ 1.
// Edges are emitted in path order.
// Complexity: O(n).
func Path(g digraph.Mutable, n int) ([]digraph.Vertex, error) {
	if n < 1 {
		return nil, wrapf("Path", "n=%d", ErrTooFewVertices, n)
	}

	vs := addVertices(g, n)
	for i := 0; i+1 < n; i++ {
		if _, ok := g.AddEdge(vs[i], vs[i+1]); !ok {
			return nil, wrapf("Path", "edge %d→%d", ErrEdgeRejected, vs[i], vs[i+1])
		}
	}

	return vs, nil
}

// Cycle appends n fresh vertices to g and connects them as the directed
// cycle v0→v1→…→v(n-1)→v0, returning the vertices in cycle order. n must be
// ≥ 3 (smaller cycles would need self-loops or reciprocal pairs, which are
// not the C_n shape).
// Complexity: O(n).
func Cycle(g digraph.Mutable, n int) ([]digraph.Vertex, error) {
	if n < 3 {
		return nil, wrapf("Cycle", "n=%d", ErrTooFewVertices, n)
	}

	vs, err := Path(g, n)
	if err != nil {
		return nil, err
	}
	if _, ok := g.AddEdge(vs[n-1], vs[0]); !ok {
		return nil, wrapf("Cycle", "closing edge %d→%d", ErrEdgeRejected, vs[n-1], vs[0])
	}

	return vs, nil
}

// Complete appends n fresh vertices to g and connects every ordered pair of
// distinct vertices, i.e. the complete digraph K_n with n(n-1) edges. n must
// be ≥ 1. Edges are emitted source-major, destinations ascending.
// Complexity: O(n²).
func Complete(g digraph.Mutable, n int) ([]digraph.Vertex, error) {
	if n < 1 {
		return nil, wrapf("Complete", "n=%d", ErrTooFewVertices, n)
	}

	vs := addVertices(g, n)
	for _, src := range vs {
		for _, dst := range vs {
			if src == dst {
				continue
			}
			if _, ok := g.AddEdge(src, dst); !ok {
				return nil, wrapf("Complete", "edge %d→%d", ErrEdgeRejected, src, dst)
			}
		}
	}

	return vs, nil
}

// Star appends 1+n fresh vertices to g — a center followed by n leaves —
// and connects center→leaf for every leaf, in leaf order. n must be ≥ 1.
// Complexity: O(n).
func Star(g digraph.Mutable, n int) (center digraph.Vertex, leaves []digraph.Vertex, err error) {
	if n < 1 {
		return digraph.NoVertex, nil, wrapf("Star", "n=%d", ErrTooFewVertices, n)
	}

	center = g.AddVertex()
	leaves = addVertices(g, n)
	for _, leaf := range leaves {
		if _, ok := g.AddEdge(center, leaf); !ok {
			return digraph.NoVertex, nil, wrapf("Star", "edge %d→%d", ErrEdgeRejected, center, leaf)
		}
	}

	return center, leaves, nil
}

// addVertices appends n fresh vertices and returns them in creation order.
func addVertices(g digraph.Mutable, n int) []digraph.Vertex {
	vs := make([]digraph.Vertex, n)
	for i := range vs {
		vs[i] = g.AddVertex()
	}

	return vs
}
