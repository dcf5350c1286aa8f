// This file declares the mutable/immutable interface families and the
// generic Freezer/Thawer association between them.
package digraph

// Queries is the read surface shared by mutable and immutable graphs.
//
// Every method is total: a vertex at or beyond VertexCount() yields an empty
// slice or false rather than an error, so traversal code can probe freely
// without bounds-checking noise. An empty result therefore means "no such
// vertex or no incident edges".
type Queries interface {
	// Successors returns the destination vertices of all edges leaving v,
	// sorted ascending. Empty for an out-of-range v.
	Successors(v Vertex) []Vertex

	// OutEdges returns all edges leaving v, sorted ascending by
	// destination. Empty for an out-of-range v.
	OutEdges(v Vertex) []Edge

	// HasEdge reports whether an edge src→dst exists. False whenever either
	// endpoint is out of range.
	HasEdge(src, dst Vertex) bool

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges.
	EdgeCount() int
}

// BidirectionalQueries is the optional predecessor-side extension of
// Queries, implemented by representations that index incoming edges.
type BidirectionalQueries interface {
	// Predecessors returns the source vertices of all edges entering v,
	// sorted ascending. Empty for an out-of-range v.
	Predecessors(v Vertex) []Vertex

	// InEdges returns all edges entering v, sorted ascending by source.
	// Empty for an out-of-range v.
	InEdges(v Vertex) []Edge
}

// Mutable is the contract for building a graph incrementally.
//
// A Mutable value assumes exclusive access by one logical owner; none of its
// methods lock internally. Freeze (see Freezer) is the hand-off point to a
// shareable immutable form.
type Mutable interface {
	Queries

	// AddVertex appends a new vertex with the next sequential id, growing
	// backing storage as needed. It always succeeds.
	AddVertex() Vertex

	// AddEdge creates the edge src→dst and returns it with ok=true. It
	// returns ok=false, creating nothing, when either endpoint is out of
	// range or the representation forbids a duplicate of an existing edge.
	AddEdge(src, dst Vertex) (Edge, bool)
}

// Immutable is the contract for frozen, read-only graphs. Immutable values
// have no mutable state and are safe for unsynchronized concurrent reads.
type Immutable interface {
	Queries

	// Vertices returns every vertex in ascending id order.
	Vertices() []Vertex

	// Edges returns every edge in ascending id order.
	Edges() []Edge

	// MaxVertexID returns the largest vertex id, or NoVertex when the graph
	// has no vertices.
	MaxVertexID() Vertex

	// Empty reports whether the graph has no vertices.
	Empty() bool
}

// MutableBidirectional is a Mutable graph that also indexes incoming edges.
type MutableBidirectional interface {
	Mutable
	BidirectionalQueries
}

// ImmutableBidirectional is an Immutable graph that also indexes incoming
// edges.
type ImmutableBidirectional interface {
	Immutable
	BidirectionalQueries
}

// Freezer ties a mutable representation to the concrete immutable type its
// Freeze produces. A representation M satisfying Freezer[I] declares, at the
// type level, that freezing an M yields an I; the matching I is expected to
// satisfy Thawer[M] so the conversion round-trips.
//
// Freeze produces an independent snapshot: later mutation of the receiver is
// never observable through a previously returned I, and vice versa.
type Freezer[I any] interface {
	Mutable

	// Freeze returns an independent immutable snapshot of the receiver.
	// Complexity: O(V + E).
	Freeze() I
}

// Thawer is the inverse association: an immutable representation I
// satisfying Thawer[M] declares that thawing yields a fresh, fully
// independent mutable M initialized with the frozen contents.
type Thawer[M any] interface {
	Immutable

	// Thaw returns an independent mutable copy of the receiver.
	// Complexity: O(V + E).
	Thaw() M
}

// EdgeBetween reports whether an edge src→dst exists using only the
// Successors query, by linear scan. It is the fallback for representations
// without an adjacency index; Graph's own HasEdge answers the same question
// from its successor map instead.
// Complexity: O(out-degree of src).
func EdgeBetween(g Queries, src, dst Vertex) bool {
	for _, w := range g.Successors(src) {
		if w == dst {
			return true
		}
	}

	return false
}
