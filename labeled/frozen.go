// This file implements the immutable edge-labeled adapter and MapLabels.
package labeled

import "github.com/ablomov/floe/digraph"

// Frozen is the immutable form of a labeled graph: the base representation's
// frozen type I plus the label store. Like every frozen value in this
// module it has no mutable state and is safe for unsynchronized concurrent
// reads.
//
// Frozen satisfies digraph.Immutable, so labeled snapshots can flow into any
// consumer of the plain immutable contract.
type Frozen[L any, M digraph.Freezer[I], I digraph.Thawer[M]] struct {
	base   I
	labels []L
}

// Compile-time interface conformance anchor for the simple-representation
// instantiation.
var _ digraph.ImmutableBidirectional = (*Frozen[int, *digraph.Graph, *digraph.Frozen])(nil)

// Vertices delegates to the base snapshot.
func (f *Frozen[L, M, I]) Vertices() []digraph.Vertex { return f.base.Vertices() }

// Edges delegates to the base snapshot.
func (f *Frozen[L, M, I]) Edges() []digraph.Edge { return f.base.Edges() }

// Successors delegates to the base snapshot.
func (f *Frozen[L, M, I]) Successors(v digraph.Vertex) []digraph.Vertex {
	return f.base.Successors(v)
}

// OutEdges delegates to the base snapshot.
func (f *Frozen[L, M, I]) OutEdges(v digraph.Vertex) []digraph.Edge {
	return f.base.OutEdges(v)
}

// HasEdge delegates to the base snapshot.
func (f *Frozen[L, M, I]) HasEdge(src, dst digraph.Vertex) bool {
	return f.base.HasEdge(src, dst)
}

// VertexCount delegates to the base snapshot.
func (f *Frozen[L, M, I]) VertexCount() int { return f.base.VertexCount() }

// EdgeCount delegates to the base snapshot. It always equals the length of
// the label store.
func (f *Frozen[L, M, I]) EdgeCount() int { return f.base.EdgeCount() }

// MaxVertexID delegates to the base snapshot.
func (f *Frozen[L, M, I]) MaxVertexID() digraph.Vertex { return f.base.MaxVertexID() }

// Empty delegates to the base snapshot.
func (f *Frozen[L, M, I]) Empty() bool { return f.base.Empty() }

// Predecessors delegates to the base when it implements the bidirectional
// extension; a base without a predecessor index yields nil.
func (f *Frozen[L, M, I]) Predecessors(v digraph.Vertex) []digraph.Vertex {
	if b, ok := any(f.base).(digraph.BidirectionalQueries); ok {
		return b.Predecessors(v)
	}

	return nil
}

// InEdges delegates to the base when it implements the bidirectional
// extension; a base without a predecessor index yields nil.
func (f *Frozen[L, M, I]) InEdges(v digraph.Vertex) []digraph.Edge {
	if b, ok := any(f.base).(digraph.BidirectionalQueries); ok {
		return b.InEdges(v)
	}

	return nil
}

// Label returns the label of e, with ok=false for an edge id outside the
// label store. O(1).
func (f *Frozen[L, M, I]) Label(e digraph.Edge) (L, bool) {
	return labelAt(f.labels, e.ID)
}

// MustLabel returns the label of e and panics for an edge id outside the
// label store. O(1).
func (f *Frozen[L, M, I]) MustLabel(e digraph.Edge) L {
	return mustLabelAt(f.labels, e.ID)
}

// LabeledEdges returns every edge paired with its label, in ascending edge
// id order.
// Complexity: O(V + E).
func (f *Frozen[L, M, I]) LabeledEdges() []LabeledEdge[L] {
	return zipEdges(f.base, f.labels)
}

// Thaw returns an independent mutable labeled graph: the base's own Thaw
// for structure, plus a copy of the label store.
// Complexity: O(V + E).
func (f *Frozen[L, M, I]) Thaw() *Graph[L, M, I] {
	return &Graph[L, M, I]{
		base:   f.base.Thaw(),
		labels: cloneLabels(f.labels),
	}
}

// MapLabels returns a new frozen labeled graph with every label transformed
// by fn. The base structure is shared, not copied — frozen values are
// immutable, so sharing is safe — making this a pure O(E) value transform.
// Edge ids, and therefore label positions, are preserved.
func MapLabels[L, L2 any, M digraph.Freezer[I], I digraph.Thawer[M]](f *Frozen[L, M, I], fn func(L) L2) *Frozen[L2, M, I] {
	labels := make([]L2, len(f.labels))
	for i, l := range f.labels {
		labels[i] = fn(l)
	}

	return &Frozen[L2, M, I]{base: f.base, labels: labels}
}
