package digraph_test

import (
	"fmt"

	"github.com/ablomov/floe/digraph"
)

// Build a small graph, freeze it, and show that the snapshot is unaffected
// by later mutation.
func Example() {
	g := digraph.New()
	a := g.AddVertex() // 0
	b := g.AddVertex() // 1
	c := g.AddVertex() // 2
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	snap := g.Freeze()
	g.AddEdge(a, c) // not visible through snap

	fmt.Println("snapshot edges:", snap.EdgeCount())
	fmt.Println("live edges:    ", g.EdgeCount())
	fmt.Println("snap has 0→2:  ", snap.HasEdge(a, c))
	// Output:
	// snapshot edges: 2
	// live edges:     3
	// snap has 0→2:   false
}

// Duplicate edges are reported through the comma-ok result, not an error.
func ExampleGraph_AddEdge() {
	g := digraph.New()
	a, b := g.AddVertex(), g.AddVertex()

	if e, ok := g.AddEdge(a, b); ok {
		fmt.Println("created edge", e.ID)
	}
	if _, ok := g.AddEdge(a, b); !ok {
		fmt.Println("duplicate rejected")
	}
	// Output:
	// created edge 0
	// duplicate rejected
}

// Thaw produces an independent mutable copy for further construction.
func ExampleFrozen_Thaw() {
	g := digraph.New()
	a, b := g.AddVertex(), g.AddVertex()
	g.AddEdge(a, b)

	snap := g.Freeze()
	h := snap.Thaw()
	c := h.AddVertex()
	h.AddEdge(b, c)

	fmt.Println("snapshot:", snap.VertexCount(), "vertices,", snap.EdgeCount(), "edges")
	fmt.Println("thawed:  ", h.VertexCount(), "vertices,", h.EdgeCount(), "edges")
	// Output:
	// snapshot: 2 vertices, 1 edges
	// thawed:   3 vertices, 2 edges
}
