// This file implements Frozen, the immutable snapshot form of Graph.
package digraph

import (
	"maps"
	"sort"
)

// Frozen is the immutable snapshot of a simple bidirectional digraph.
//
// Its adjacency containers are sized exactly to the vertex count recorded at
// freeze time and are never mutated afterwards, so a Frozen value may be
// aliased and read concurrently from any number of goroutines without
// synchronization. Thaw converts back to a fresh, independent Graph.
type Frozen struct {
	succ []map[Vertex]EdgeID
	pred []map[Vertex]EdgeID

	edgeCount int
}

// Compile-time interface conformance anchors.
var (
	_ ImmutableBidirectional = (*Frozen)(nil)
	_ Thawer[*Graph]         = (*Frozen)(nil)
)

// Vertices returns every vertex in ascending id order: 0 … VertexCount-1.
// Complexity: O(V).
func (f *Frozen) Vertices() []Vertex {
	if len(f.succ) == 0 {
		return nil
	}
	out := make([]Vertex, len(f.succ))
	for i := range out {
		out[i] = Vertex(i)
	}

	return out
}

// Edges returns every edge in ascending id order.
// Complexity: O(V + E log E).
func (f *Frozen) Edges() []Edge {
	if f.edgeCount == 0 {
		return nil
	}
	out := make([]Edge, 0, f.edgeCount)
	for src, m := range f.succ {
		for dst, id := range m {
			out = append(out, Edge{ID: id, Src: Vertex(src), Dst: dst})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Successors returns the destinations of all edges leaving v, sorted
// ascending. Out-of-range v yields an empty result.
func (f *Frozen) Successors(v Vertex) []Vertex {
	if !f.inRange(v) {
		return nil
	}

	return sortedKeys(f.succ[v])
}

// Predecessors returns the sources of all edges entering v, sorted
// ascending. Out-of-range v yields an empty result.
func (f *Frozen) Predecessors(v Vertex) []Vertex {
	if !f.inRange(v) {
		return nil
	}

	return sortedKeys(f.pred[v])
}

// OutEdges returns all edges leaving v, sorted ascending by destination.
// Out-of-range v yields an empty result.
func (f *Frozen) OutEdges(v Vertex) []Edge {
	if !f.inRange(v) {
		return nil
	}

	return outEdgesOf(f.succ[v], v)
}

// InEdges returns all edges entering v, sorted ascending by source.
// Out-of-range v yields an empty result.
func (f *Frozen) InEdges(v Vertex) []Edge {
	if !f.inRange(v) {
		return nil
	}

	return inEdgesOf(f.pred[v], v)
}

// HasEdge reports whether an edge src→dst exists. Out-of-range endpoints
// yield false. O(1) expected.
func (f *Frozen) HasEdge(src, dst Vertex) bool {
	if !f.inRange(src) || !f.inRange(dst) {
		return false
	}
	_, ok := f.succ[src][dst]

	return ok
}

// VertexCount returns the number of vertices. O(1).
func (f *Frozen) VertexCount() int { return len(f.succ) }

// EdgeCount returns the number of edges. O(1).
func (f *Frozen) EdgeCount() int { return f.edgeCount }

// MaxVertexID returns the largest vertex id, or NoVertex when the graph has
// no vertices. O(1).
func (f *Frozen) MaxVertexID() Vertex {
	if len(f.succ) == 0 {
		return NoVertex
	}

	return Vertex(len(f.succ) - 1)
}

// Empty reports whether the graph has no vertices. O(1).
func (f *Frozen) Empty() bool { return len(f.succ) == 0 }

// Thaw returns a fresh mutable Graph initialized with the frozen contents,
// sized exactly to the frozen vertex count. The copy is fully independent:
// mutating it never affects f or any other snapshot.
// Complexity: O(V + E).
func (f *Frozen) Thaw() *Graph {
	return &Graph{
		succ:        cloneAdjacency(f.succ),
		pred:        cloneAdjacency(f.pred),
		vertexCount: len(f.succ),
		edgeCount:   f.edgeCount,
	}
}

// inRange reports whether v is a vertex id of this snapshot.
func (f *Frozen) inRange(v Vertex) bool {
	return v >= 0 && int(v) < len(f.succ)
}

// cloneAdjacency deep-copies one adjacency container. Nil buckets (isolated
// vertices) stay nil.
func cloneAdjacency(src []map[Vertex]EdgeID) []map[Vertex]EdgeID {
	out := make([]map[Vertex]EdgeID, len(src))
	for i, m := range src {
		out[i] = maps.Clone(m)
	}

	return out
}
