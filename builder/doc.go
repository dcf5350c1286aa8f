// Package builder provides deterministic topology constructors over the
// digraph.Mutable contract.
//
// What:
//
//   - Path(g, n): v0→v1→…→v(n-1).
//   - Cycle(g, n): a path plus the closing edge v(n-1)→v0.
//   - Complete(g, n): every ordered pair of distinct vertices.
//   - Star(g, n): a center with n leaves, center→leaf.
//
// Each constructor appends fresh vertices to whatever graph it is given and
// emits edges in a stable, documented order, so the same call sequence
// always produces the same handles. Constructors work through the Mutable
// interface only; any representation — plain or wrapped — that exposes
// AddVertex/AddEdge can be the target, and labeled graphs get the same
// shapes by wiring their base through the adapter first.
//
// Errors:
//
//   - ErrTooFewVertices: the requested size is below the constructor's
//     minimum (for example Cycle needs n ≥ 3).
//   - ErrEdgeRejected: the target graph refused an edge the topology
//     requires, which happens when the same pair was already connected
//     before the constructor ran.
//
// Errors are wrapped with the constructor name; branch on them with
// errors.Is.
package builder
