// This file declares the Vertex, EdgeID, and Edge handle types shared by
// every representation in the module.
package digraph

// Vertex identifies a vertex within one graph. Vertices are dense and
// zero-based: the n-th AddVertex call returns Vertex(n-1). A Vertex is never
// reused or invalidated, because no deletion is supported.
type Vertex int

// NoVertex is returned by queries that have no vertex to report, such as
// MaxVertexID on an empty graph.
const NoVertex = Vertex(-1)

// EdgeID identifies an edge within one graph. Edge ids are dense and
// zero-based in creation order, independent of vertex ids.
type EdgeID int

// Edge is the immutable handle for a directed edge Src→Dst. It is a plain
// comparable value; two Edge values from the same graph are equal iff they
// name the same edge.
type Edge struct {
	// ID is the dense creation-order identifier of this edge.
	ID EdgeID

	// Src is the source vertex.
	Src Vertex

	// Dst is the destination vertex.
	Dst Vertex
}

// defaultVertexCapacity is the backing-storage size reserved by New when no
// explicit hint is given.
const defaultVertexCapacity = 128
