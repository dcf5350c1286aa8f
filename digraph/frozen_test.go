package digraph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ablomov/floe/digraph"
)

// adjacencyOf flattens a graph's full adjacency into comparable form.
func adjacencyOf(g digraph.Queries) map[digraph.Vertex][]digraph.Edge {
	out := make(map[digraph.Vertex][]digraph.Edge)
	for v := 0; v < g.VertexCount(); v++ {
		if es := g.OutEdges(digraph.Vertex(v)); len(es) > 0 {
			out[digraph.Vertex(v)] = es
		}
	}

	return out
}

func TestFreeze_SnapshotCounts(t *testing.T) {
	g := buildTriangle(t)
	f := g.Freeze()

	assert.Equal(t, 3, f.VertexCount())
	assert.Equal(t, 2, f.EdgeCount())
	assert.Equal(t, []digraph.Vertex{0, 1, 2}, f.Vertices())
	assert.Equal(t, []digraph.Edge{
		{ID: 0, Src: 0, Dst: 1},
		{ID: 1, Src: 1, Dst: 2},
	}, f.Edges())
}

func TestFreeze_LaterMutationInvisible(t *testing.T) {
	g := buildTriangle(t)
	f := g.Freeze()

	// Mutate the source after freezing.
	v := g.AddVertex()
	_, ok := g.AddEdge(0, 2)
	require.True(t, ok)
	_, ok = g.AddEdge(2, v)
	require.True(t, ok)

	assert.Equal(t, 3, f.VertexCount())
	assert.Equal(t, 2, f.EdgeCount())
	assert.False(t, f.HasEdge(0, 2))
	assert.Empty(t, f.Successors(v))
}

func TestFreeze_MultipleSnapshotsIndependent(t *testing.T) {
	g := digraph.New()
	a, b := g.AddVertex(), g.AddVertex()
	f1 := g.Freeze()

	_, ok := g.AddEdge(a, b)
	require.True(t, ok)
	f2 := g.Freeze()

	assert.Equal(t, 0, f1.EdgeCount())
	assert.Equal(t, 1, f2.EdgeCount())
	assert.False(t, f1.HasEdge(a, b))
	assert.True(t, f2.HasEdge(a, b))
}

func TestThaw_RoundTripEquality(t *testing.T) {
	g := digraph.New()
	for i := 0; i < 6; i++ {
		g.AddVertex()
	}
	for _, p := range [][2]digraph.Vertex{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {0, 5}} {
		_, ok := g.AddEdge(p[0], p[1])
		require.True(t, ok)
	}

	thawed := g.Freeze().Thaw()

	assert.Equal(t, g.VertexCount(), thawed.VertexCount())
	assert.Equal(t, g.EdgeCount(), thawed.EdgeCount())
	assert.Equal(t, adjacencyOf(g), adjacencyOf(thawed))
	for v := 0; v < g.VertexCount(); v++ {
		assert.Equal(t, g.Predecessors(digraph.Vertex(v)), thawed.Predecessors(digraph.Vertex(v)))
	}
}

func TestThaw_CopyIsIndependent(t *testing.T) {
	g := buildTriangle(t)
	f := g.Freeze()
	thawed := f.Thaw()

	// Mutating the thawed copy must affect neither the snapshot nor the
	// original mutable graph.
	_, ok := thawed.AddEdge(0, 2)
	require.True(t, ok)
	thawed.AddVertex()

	assert.Equal(t, 2, f.EdgeCount())
	assert.False(t, f.HasEdge(0, 2))
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 3, g.VertexCount())
}

func TestThaw_ContinuesIDSequences(t *testing.T) {
	g := buildTriangle(t)
	thawed := g.Freeze().Thaw()

	assert.Equal(t, digraph.Vertex(3), thawed.AddVertex())
	e, ok := thawed.AddEdge(2, 3)
	require.True(t, ok)
	assert.Equal(t, digraph.EdgeID(2), e.ID)
}

func TestFrozen_EmptyGraph(t *testing.T) {
	f := digraph.New().Freeze()

	assert.True(t, f.Empty())
	assert.Equal(t, digraph.NoVertex, f.MaxVertexID())
	assert.Empty(t, f.Vertices())
	assert.Empty(t, f.Edges())
	assert.Equal(t, 0, f.VertexCount())
}

func TestFrozen_MaxVertexID(t *testing.T) {
	g := digraph.New()
	g.AddVertex()
	g.AddVertex()
	f := g.Freeze()

	assert.False(t, f.Empty())
	assert.Equal(t, digraph.Vertex(1), f.MaxVertexID())
}

func TestFrozen_OutOfRangeTolerant(t *testing.T) {
	f := buildTriangle(t).Freeze()

	for _, v := range []digraph.Vertex{-1, 3, 42} {
		assert.Empty(t, f.Successors(v))
		assert.Empty(t, f.Predecessors(v))
		assert.Empty(t, f.OutEdges(v))
		assert.Empty(t, f.InEdges(v))
		assert.False(t, f.HasEdge(v, 0))
	}
}

// TestFrozen_ConcurrentReaders exercises the shared-read guarantee: a frozen
// value must serve many goroutines with no synchronization. Run with -race.
func TestFrozen_ConcurrentReaders(t *testing.T) {
	g := digraph.New()
	for i := 0; i < 64; i++ {
		g.AddVertex()
	}
	for i := 0; i < 63; i++ {
		_, ok := g.AddEdge(digraph.Vertex(i), digraph.Vertex(i+1))
		require.True(t, ok)
	}
	f := g.Freeze()

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 0; v < f.VertexCount(); v++ {
				f.Successors(digraph.Vertex(v))
				f.InEdges(digraph.Vertex(v))
				f.HasEdge(digraph.Vertex(v), digraph.Vertex(v+1))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 63, f.EdgeCount())
}
