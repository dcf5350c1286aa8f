// This file implements Graph, the mutable simple bidirectional digraph.
package digraph

import "sort"

// Graph is a mutable simple bidirectional digraph: at most one edge per
// ordered (src, dst) pair, with both successor and predecessor indexes.
//
// Storage is a pair of parallel slices, one entry per vertex, holding
// destination→edge-id and source→edge-id maps. Slice length is the reserved
// capacity; the live vertex count is tracked separately and backing storage
// doubles when it is exhausted. Maps are allocated lazily on the first
// incident edge, so an isolated vertex costs two nil slots.
//
// Graph performs no internal locking and assumes a single logical owner;
// call Freeze to obtain a snapshot that is safe to share across goroutines.
type Graph struct {
	succ []map[Vertex]EdgeID // succ[v][w] = id of edge v→w
	pred []map[Vertex]EdgeID // pred[v][u] = id of edge u→v

	vertexCount int
	edgeCount   int
}

// Compile-time interface conformance anchors.
var (
	_ MutableBidirectional = (*Graph)(nil)
	_ Freezer[*Frozen]     = (*Graph)(nil)
)

// New returns an empty Graph with the default reserved capacity of 128
// vertices.
func New() *Graph {
	return NewWithCapacity(defaultVertexCapacity, 0)
}

// NewWithCapacity returns an empty Graph with storage reserved for
// vertexHint vertices. The hints are capacity hints only, never semantic
// constraints: the graph grows past vertexHint transparently. edgeHint is
// accepted for interface symmetry but unused, because map-based adjacency
// does not benefit from an edge-count reservation the way a flat edge array
// would.
//
// Negative hints are a programming error and panic.
func NewWithCapacity(vertexHint, edgeHint int) *Graph {
	if vertexHint < 0 || edgeHint < 0 {
		panic("digraph: negative capacity hint")
	}

	return &Graph{
		succ: make([]map[Vertex]EdgeID, vertexHint),
		pred: make([]map[Vertex]EdgeID, vertexHint),
	}
}

// AddVertex appends a new vertex and returns its id. Ids are dense and
// strictly increasing: 0, 1, 2, … in call order.
// Complexity: O(1) amortized; doubling growth when capacity is exhausted.
func (g *Graph) AddVertex() Vertex {
	if g.vertexCount == len(g.succ) {
		g.grow()
	}
	v := Vertex(g.vertexCount)
	g.vertexCount++

	return v
}

// grow doubles the reserved capacity of both adjacency containers.
func (g *Graph) grow() {
	newCap := 2 * len(g.succ)
	if newCap == 0 {
		newCap = 1
	}
	succ := make([]map[Vertex]EdgeID, newCap)
	copy(succ, g.succ)
	g.succ = succ
	pred := make([]map[Vertex]EdgeID, newCap)
	copy(pred, g.pred)
	g.pred = pred
}

// AddEdge creates the edge src→dst and returns it with ok=true.
//
// It returns ok=false, creating nothing, when src or dst is out of the live
// vertex range or when an edge src→dst already exists — the membership check
// that makes this representation simple (no parallel edges). Self-loops are
// permitted. Accepted edges receive dense ids 0, 1, 2, … in creation order.
// Complexity: O(1) expected.
func (g *Graph) AddEdge(src, dst Vertex) (Edge, bool) {
	if !g.inRange(src) || !g.inRange(dst) {
		return Edge{}, false
	}
	if _, dup := g.succ[src][dst]; dup {
		return Edge{}, false
	}

	id := EdgeID(g.edgeCount)
	if g.succ[src] == nil {
		g.succ[src] = make(map[Vertex]EdgeID)
	}
	g.succ[src][dst] = id
	if g.pred[dst] == nil {
		g.pred[dst] = make(map[Vertex]EdgeID)
	}
	g.pred[dst][src] = id
	g.edgeCount++

	return Edge{ID: id, Src: src, Dst: dst}, true
}

// Successors returns the destinations of all edges leaving v, sorted
// ascending. Out-of-range v yields an empty result, not an error.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) Successors(v Vertex) []Vertex {
	if !g.inRange(v) {
		return nil
	}

	return sortedKeys(g.succ[v])
}

// Predecessors returns the sources of all edges entering v, sorted
// ascending. Out-of-range v yields an empty result, not an error.
// Complexity: O(d log d), d = in-degree.
func (g *Graph) Predecessors(v Vertex) []Vertex {
	if !g.inRange(v) {
		return nil
	}

	return sortedKeys(g.pred[v])
}

// OutEdges returns all edges leaving v, sorted ascending by destination.
// Out-of-range v yields an empty result.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) OutEdges(v Vertex) []Edge {
	if !g.inRange(v) {
		return nil
	}

	return outEdgesOf(g.succ[v], v)
}

// InEdges returns all edges entering v, sorted ascending by source.
// Out-of-range v yields an empty result.
// Complexity: O(d log d), d = in-degree.
func (g *Graph) InEdges(v Vertex) []Edge {
	if !g.inRange(v) {
		return nil
	}

	return inEdgesOf(g.pred[v], v)
}

// HasEdge reports whether an edge src→dst exists. Out-of-range endpoints
// yield false. This is a successor-map membership test, the representation's
// principal advantage over plain adjacency lists (compare EdgeBetween).
// Complexity: O(1) expected.
func (g *Graph) HasEdge(src, dst Vertex) bool {
	if !g.inRange(src) || !g.inRange(dst) {
		return false
	}
	_, ok := g.succ[src][dst]

	return ok
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Freeze returns an independent immutable snapshot of the graph, with both
// adjacency containers copied and truncated to the live vertex count.
// Subsequent mutation of g is not observable through the snapshot.
// Complexity: O(V + E).
func (g *Graph) Freeze() *Frozen {
	return &Frozen{
		succ:      cloneAdjacency(g.succ[:g.vertexCount]),
		pred:      cloneAdjacency(g.pred[:g.vertexCount]),
		edgeCount: g.edgeCount,
	}
}

// inRange reports whether v is a live vertex id.
func (g *Graph) inRange(v Vertex) bool {
	return v >= 0 && int(v) < g.vertexCount
}

// sortedKeys folds a neighbor map into its keys, ascending.
func sortedKeys(m map[Vertex]EdgeID) []Vertex {
	if len(m) == 0 {
		return nil
	}
	out := make([]Vertex, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// outEdgesOf reconstructs the edges leaving src from its successor map,
// sorted ascending by destination.
func outEdgesOf(m map[Vertex]EdgeID, src Vertex) []Edge {
	if len(m) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(m))
	for dst, id := range m {
		out = append(out, Edge{ID: id, Src: src, Dst: dst})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dst < out[j].Dst })

	return out
}

// inEdgesOf reconstructs the edges entering dst from its predecessor map,
// sorted ascending by source.
func inEdgesOf(m map[Vertex]EdgeID, dst Vertex) []Edge {
	if len(m) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(m))
	for src, id := range m {
		out = append(out, Edge{ID: id, Src: src, Dst: dst})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Src < out[j].Src })

	return out
}
