package dfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/dfs"
)

// buildGraph registers one vertex per name, in order, then adds the edges.
func buildGraph(t *testing.T, names []string, edges [][2]string, opts ...core.GraphOption) (*core.Graph[string], map[string]*core.Vertex[string]) {
	t.Helper()
	g := core.NewGraph[string](opts...)
	vs := make(map[string]*core.Vertex[string], len(names))
	for _, n := range names {
		vs[n] = core.NewVertex(n)
		require.NoError(t, g.AddVertex(vs[n]))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(vs[e[0]], vs[e[1]]))
	}

	return g, vs
}

// buildChain creates a path graph N0–N1–…–N(n-1).
func buildChain(t *testing.T, n int) (*core.Graph[string], []*core.Vertex[string]) {
	t.Helper()
	g := core.NewGraph[string]()
	vs := make([]*core.Vertex[string], n)
	for i := range vs {
		vs[i] = core.NewVertex(fmt.Sprintf("N%d", i))
		require.NoError(t, g.AddVertex(vs[i]))
		if i > 0 {
			require.NoError(t, g.AddEdge(vs[i-1], vs[i]))
		}
	}

	return g, vs
}

func TestDFS_NilGraph(t *testing.T) {
	out, err := dfs.DFS[string](nil, core.NewVertex("A"))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartPreconditions(t *testing.T) {
	g := core.NewGraph[string]()

	_, err := dfs.DFS(g, nil)
	assert.ErrorIs(t, err, core.ErrNilVertex)

	_, err = dfs.DFS(g, core.NewVertex("outsider"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDFS_SingleVertex(t *testing.T) {
	g, vs := buildGraph(t, []string{"X"}, nil)

	out, err := dfs.DFS(g, vs["X"])
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, out)
}

func TestDFS_Path(t *testing.T) {
	// A–B, B–C
	g, vs := buildGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})

	out, err := dfs.DFS(g, vs["A"])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, out)
}

func TestDFS_SiblingsInReverseInsertionOrder(t *testing.T) {
	// A is the hub; B, C, D are pushed in that order and popped in reverse.
	g, vs := buildGraph(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}})

	out, err := dfs.DFS(g, vs["A"])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C", "B"}, out)
}

func TestDFS_CycleVisitsOnce(t *testing.T) {
	// Square A–B–C–D–A
	g, vs := buildGraph(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})

	res, err := dfs.Walk(g, vs["A"])
	require.NoError(t, err)
	// A pushes B then D; D pops first and finds C unvisited.
	assert.Equal(t, []string{"A", "D", "C", "B"}, res.Values())
	assert.Len(t, res.Order, 4)
	assert.Equal(t, vs["D"], res.Parent[vs["C"]])
	assert.Equal(t, 2, res.Depth[vs["C"]])
	_, hasParent := res.Parent[vs["A"]]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_Disconnected(t *testing.T) {
	g, vs := buildGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}})

	res, err := dfs.Walk(g, vs["A"])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Values())
	assert.False(t, res.Visited(vs["C"]), "disconnected vertex should not be visited")
}

func TestDFS_LargeChain_DepthParent(t *testing.T) {
	const n = 50
	g, vs := buildChain(t, n)

	res, err := dfs.Walk(g, vs[0])
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	for i, v := range res.Order {
		assert.Same(t, vs[i], v)
	}
	assert.Equal(t, n-1, res.Depth[vs[n-1]])
	assert.Equal(t, vs[n-2], res.Parent[vs[n-1]])
}

func TestDFS_ReachableExactlyOnce(t *testing.T) {
	// Two triangles joined by a bridge, plus an unreachable pair.
	g, vs := buildGraph(t,
		[]string{"A", "B", "C", "D", "E", "F", "X", "Y"},
		[][2]string{
			{"A", "B"}, {"B", "C"}, {"C", "A"},
			{"C", "D"},
			{"D", "E"}, {"E", "F"}, {"F", "D"},
			{"X", "Y"},
		})

	out, err := dfs.DFS(g, vs["B"])
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E", "F"}, out)
	assert.Len(t, out, 6)
	assert.Equal(t, "B", out[0])
}

func TestDFS_EqualValuesAreDistinctVertices(t *testing.T) {
	g := core.NewGraph[string]()
	a1, a2 := core.NewVertex("A"), core.NewVertex("A")
	require.NoError(t, g.AddEdge(a1, a2))

	out, err := dfs.DFS(g, a1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, out)
}

func TestDFS_ReportsToObserver(t *testing.T) {
	var got []core.TraversalStats
	obs := core.ObserverFunc(func(s core.TraversalStats) { got = append(got, s) })
	g, vs := buildGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}}, core.WithObserver(obs))

	_, err := dfs.DFS(g, vs["A"])
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.OpDFS, got[0].Op)
	assert.Equal(t, vs["A"].String(), got[0].Start)
	assert.Equal(t, 3, got[0].Visited)
	assert.Equal(t, 3, got[0].Frames)
}
