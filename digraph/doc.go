// Package digraph defines dense integer graph handles, the mutable and
// immutable graph interface families, and a simple bidirectional digraph
// representation with freeze/thaw conversion between the two forms.
//
// What:
//
//   - Vertex and EdgeID are dense, zero-based handles assigned in creation
//     order; Edge is the immutable (ID, Src, Dst) triple.
//   - Queries / Mutable / Immutable (+Bidirectional variants) split the
//     read, build, and snapshot surfaces so representations can pick cheap
//     mutation storage while still exposing a value-semantic frozen form.
//   - Freezer[I] and Thawer[M] tie each mutable representation to the
//     concrete immutable type its Freeze produces, and back.
//   - Graph is the concrete simple (no parallel edges) bidirectional
//     digraph: per-vertex destination→edge and source→edge maps over
//     growable, capacity-doubling backing storage. Frozen is its snapshot.
//
// Why:
//
//   - Building: map-based adjacency makes AddEdge and HasEdge cheap and
//     keeps the no-parallel-edge invariant a single membership test.
//   - Sharing: Freeze() is the one controlled point where an O(V+E) copy is
//     paid; the resulting Frozen value has no mutable state and is safe for
//     concurrent readers without locks.
//
// Complexity:
//
//   - AddVertex: O(1) amortized (capacity doubling).
//   - AddEdge / HasEdge: O(1) expected (map operations).
//   - Successors / OutEdges (and the predecessor twins): O(d log d) for the
//     sorted result, d = degree.
//   - Freeze / Thaw: O(V + E).
//
// Concurrency:
//
//   - Graph performs no internal locking; a mutable graph assumes one
//     logical owner at a time. Frozen values are immutable and may be read
//     from any number of goroutines concurrently.
//
// Errors:
//
//   - Queries are total: out-of-range vertices yield empty results or
//     false, never an error.
//   - AddEdge reports rejection (out-of-range endpoint, duplicate edge)
//     through its comma-ok result.
//   - Negative capacity hints to NewWithCapacity are a programming error
//     and panic.
package digraph
