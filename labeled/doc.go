// Package labeled attaches an arbitrary label value to every edge of an
// underlying graph representation, without modifying its structural logic.
//
// What:
//
//   - Graph[L, M, I] wraps a mutable base representation M (anything
//     satisfying digraph.Freezer[I]) together with an append-only label
//     store indexed by edge id.
//   - Frozen[L, M, I] is the matching immutable form over the base's frozen
//     type I; MapLabels derives a new frozen labeled graph with every label
//     transformed, sharing the untouched base structure.
//   - New and NewWithCapacity construct the adapter over the simple
//     bidirectional digraph; Wrap accepts any other base representation.
//
// Why an adapter:
//
//   - Label storage composes orthogonally with any structural
//     representation, so adjacency logic is never duplicated per label
//     type. The price is one invariant the adapter alone upholds: the
//     label store's length always equals the base graph's edge count.
//   - That invariant is why Graph has AddLabeledEdge but deliberately no
//     AddEdge: the adapter does not satisfy digraph.Mutable, so an
//     unlabeled insertion — an edge with no label slot — cannot be
//     expressed at compile time.
//
// Complexity:
//
//   - AddLabeledEdge: the base's AddEdge plus an O(1) amortized append.
//   - Label / MustLabel: O(1).
//   - LabeledEdges: O(V + E).
//   - MapLabels: O(E), structure shared.
//
// Errors:
//
//   - ErrBaseNotEmpty: Wrap was given a base that already has edges, which
//     would leave those edges without labels.
//   - MustLabel panics on an edge id outside the label store; Label is the
//     checked variant.
package labeled
