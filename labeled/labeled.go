// This file implements the mutable edge-labeled adapter.
package labeled

import (
	"errors"

	"github.com/ablomov/floe/digraph"
)

// ErrBaseNotEmpty indicates that Wrap was given a base graph that already
// contains edges; those edges would have no labels, breaking the
// label-store/edge-count parity the adapter guarantees.
var ErrBaseNotEmpty = errors.New("labeled: base graph already has edges")

// LabeledEdge pairs an edge with its label.
type LabeledEdge[L any] struct {
	Edge  digraph.Edge
	Label L
}

// Graph is a mutable graph whose edges each carry a label of type L, layered
// over a base structural representation M.
//
// All structural state is owned by the base; the adapter owns only the label
// store, a slice whose index is the edge id. The store grows in lock-step
// with edge creation, so len(store) == base.EdgeCount() after every
// successful operation.
//
// Graph intentionally has no AddEdge method and therefore does not satisfy
// digraph.Mutable: edges enter a labeled graph only through AddLabeledEdge.
type Graph[L any, M digraph.Freezer[I], I digraph.Thawer[M]] struct {
	base   M
	labels []L
}

// New returns an empty labeled graph over a fresh simple bidirectional
// digraph (see digraph.New). For other base representations use Wrap.
func New[L any]() *Graph[L, *digraph.Graph, *digraph.Frozen] {
	return &Graph[L, *digraph.Graph, *digraph.Frozen]{base: digraph.New()}
}

// NewWithCapacity is New with explicit capacity hints. vertexHint is passed
// through to the base representation; edgeHint pre-sizes the label store.
// Negative hints are a programming error and panic.
func NewWithCapacity[L any](vertexHint, edgeHint int) *Graph[L, *digraph.Graph, *digraph.Frozen] {
	base := digraph.NewWithCapacity(vertexHint, edgeHint)

	return &Graph[L, *digraph.Graph, *digraph.Frozen]{
		base:   base,
		labels: make([]L, 0, edgeHint),
	}
}

// Wrap adapts an arbitrary base representation. The base must not contain
// edges yet (ErrBaseNotEmpty otherwise); existing vertices are fine, since
// labels attach to edges only.
//
// Type inference cannot recover I from the base value alone, so callers
// name all three parameters: Wrap[string, *digraph.Graph, *digraph.Frozen](g).
func Wrap[L any, M digraph.Freezer[I], I digraph.Thawer[M]](base M) (*Graph[L, M, I], error) {
	if base.EdgeCount() != 0 {
		return nil, ErrBaseNotEmpty
	}

	return &Graph[L, M, I]{base: base}, nil
}

// AddVertex delegates to the base representation.
func (g *Graph[L, M, I]) AddVertex() digraph.Vertex { return g.base.AddVertex() }

// AddLabeledEdge creates the edge src→dst carrying label and returns it with
// ok=true. When the base rejects the edge (out-of-range endpoint, duplicate)
// it returns ok=false and stores nothing, keeping label/edge parity intact.
// Complexity: base AddEdge + O(1) amortized.
func (g *Graph[L, M, I]) AddLabeledEdge(src, dst digraph.Vertex, label L) (digraph.Edge, bool) {
	e, ok := g.base.AddEdge(src, dst)
	if !ok {
		return digraph.Edge{}, false
	}
	// Edge ids are dense and creation-ordered, so appending lands the label
	// exactly at index e.ID.
	g.labels = append(g.labels, label)

	return e, true
}

// Label returns the label of e, with ok=false for an edge id outside the
// label store. O(1).
func (g *Graph[L, M, I]) Label(e digraph.Edge) (L, bool) {
	return labelAt(g.labels, e.ID)
}

// MustLabel returns the label of e and panics for an edge id outside the
// label store. It is the unchecked fast path for callers that already
// validated the edge; everyone else should use Label. O(1).
func (g *Graph[L, M, I]) MustLabel(e digraph.Edge) L {
	return mustLabelAt(g.labels, e.ID)
}

// LabeledEdges returns every edge paired with its label, in ascending edge
// id order.
// Complexity: O(V + E).
func (g *Graph[L, M, I]) LabeledEdges() []LabeledEdge[L] {
	return zipEdges(g.base, g.labels)
}

// Successors delegates to the base representation.
func (g *Graph[L, M, I]) Successors(v digraph.Vertex) []digraph.Vertex {
	return g.base.Successors(v)
}

// OutEdges delegates to the base representation.
func (g *Graph[L, M, I]) OutEdges(v digraph.Vertex) []digraph.Edge {
	return g.base.OutEdges(v)
}

// HasEdge delegates to the base representation.
func (g *Graph[L, M, I]) HasEdge(src, dst digraph.Vertex) bool {
	return g.base.HasEdge(src, dst)
}

// VertexCount delegates to the base representation.
func (g *Graph[L, M, I]) VertexCount() int { return g.base.VertexCount() }

// EdgeCount delegates to the base representation. It always equals the
// length of the label store.
func (g *Graph[L, M, I]) EdgeCount() int { return g.base.EdgeCount() }

// Predecessors delegates to the base when it implements the bidirectional
// extension; a base without a predecessor index yields nil.
func (g *Graph[L, M, I]) Predecessors(v digraph.Vertex) []digraph.Vertex {
	if b, ok := any(g.base).(digraph.BidirectionalQueries); ok {
		return b.Predecessors(v)
	}

	return nil
}

// InEdges delegates to the base when it implements the bidirectional
// extension; a base without a predecessor index yields nil.
func (g *Graph[L, M, I]) InEdges(v digraph.Vertex) []digraph.Edge {
	if b, ok := any(g.base).(digraph.BidirectionalQueries); ok {
		return b.InEdges(v)
	}

	return nil
}

// Freeze returns an independent immutable labeled snapshot: the base's own
// Freeze for structure, plus a copy of the label store. Labels are plain
// values, unaffected by the mutable/immutable distinction.
// Complexity: O(V + E).
func (g *Graph[L, M, I]) Freeze() *Frozen[L, M, I] {
	return &Frozen[L, M, I]{
		base:   g.base.Freeze(),
		labels: cloneLabels(g.labels),
	}
}

// labelAt is the shared bounds-checked label lookup.
func labelAt[L any](labels []L, id digraph.EdgeID) (L, bool) {
	if id < 0 || int(id) >= len(labels) {
		var zero L
		return zero, false
	}

	return labels[id], true
}

// mustLabelAt is the shared unchecked label lookup.
func mustLabelAt[L any](labels []L, id digraph.EdgeID) L {
	if id < 0 || int(id) >= len(labels) {
		panic("labeled: edge id outside label store")
	}

	return labels[id]
}

// zipEdges pairs every edge of the base with its label, in ascending edge id
// order. It walks per-vertex out-edges so it needs only the Queries surface,
// and relies on edge-id density to place each pair.
func zipEdges[L any](base digraph.Queries, labels []L) []LabeledEdge[L] {
	if len(labels) == 0 {
		return nil
	}
	out := make([]LabeledEdge[L], len(labels))
	n := base.VertexCount()
	for v := 0; v < n; v++ {
		for _, e := range base.OutEdges(digraph.Vertex(v)) {
			out[e.ID] = LabeledEdge[L]{Edge: e, Label: labels[e.ID]}
		}
	}

	return out
}

// cloneLabels copies a label store.
func cloneLabels[L any](labels []L) []L {
	if labels == nil {
		return nil
	}
	out := make([]L, len(labels))
	copy(out, labels)

	return out
}
