// Package floe is a small in-memory directed-graph library built around one
// idea: build a graph mutably, freeze it into an immutable value, and hand
// that value around freely.
//
// What floe provides:
//
//   - digraph/ — dense integer Vertex/Edge handles, the Mutable/Immutable
//     interface families (with an optional bidirectional extension), and a
//     simple bidirectional digraph representation that forbids parallel
//     edges and answers edge-existence queries from a per-vertex index.
//   - labeled/ — a generic adapter that attaches a label of any type to each
//     edge of any underlying representation, without touching its
//     structural logic.
//   - builder/ — deterministic topology constructors (paths, cycles,
//     complete graphs, stars) over the Mutable contract.
//
// Why freeze/thaw?
//
//   - Mutable graphs use growable, map-based storage that is cheap to build
//     into but assumes a single owner.
//   - Freeze() pays one O(V+E) copy and returns an immutable snapshot that
//     is safe to share across goroutines with no synchronization at all.
//   - Thaw() is the inverse: an independent mutable copy for further
//     incremental construction. Neither direction aliases backing storage.
//
// Quick ASCII example:
//
//	0 ──▶ 1 ──▶ 2
//
//	g := digraph.New()
//	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
//	g.AddEdge(a, b)
//	g.AddEdge(b, c)
//	snap := g.Freeze() // immutable, share freely
//
// There is no vertex or edge deletion: handles are dense, zero-based, and
// assigned in creation order, which keeps every invariant cheap to maintain
// and every handle valid forever.
package floe
