package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/dfs"
	"github.com/katalvlaran/ugraph/paths"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *builder.Fixture {
	t.Helper()
	fx, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)
	return fx
}

func TestBuilders_Topology(t *testing.T) {
	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		cyclic       bool
		from, to     string
		dist         int
	}{
		{"Path(5)", builder.Path(5), 5, 4, false, "0", "4", 4},
		{"Cycle(6)", builder.Cycle(6), 6, 6, true, "0", "3", 3},
		{"Star(5)", builder.Star(5), 5, 4, false, "0", "3", 2},
		{"Wheel(5)", builder.Wheel(5), 5, 8, true, "0", "2", 2},
		{"Complete(4)", builder.Complete(4), 4, 6, true, "0", "3", 1},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, true, "L0", "L1", 2},
		{"Grid(3,3)", builder.Grid(3, 3), 9, 12, true, "0,0", "2,2", 4},
		{"Grid(1,4)", builder.Grid(1, 4), 4, 3, false, "0,0", "0,3", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := build(t, nil, tt.ctor)
			g := fx.Graph
			assert.Equal(t, tt.wantV, g.VertexCount())
			assert.Equal(t, tt.wantE, g.EdgeCount())

			cyclic, err := dfs.HasCycle(g)
			require.NoError(t, err)
			assert.Equal(t, tt.cyclic, cyclic)

			n, err := paths.ShortestPath(g, fx.Vertex(tt.from), fx.Vertex(tt.to))
			require.NoError(t, err)
			assert.Equal(t, tt.dist, n)
		})
	}
}

func TestBuilders_InsertionOrder(t *testing.T) {
	fx := build(t, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(5))

	order, err := dfs.DFS(fx.Graph, fx.Vertex("A"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "D", "C", "B"}, order)

	star := build(t, nil, builder.Star(3))
	assert.Equal(t, builder.CenterVertexID, star.Graph.Vertices()[0].Value(), "hub is registered first")
}

func TestBuilders_ComposeSharesVertices(t *testing.T) {
	fx := build(t, nil, builder.Cycle(4), builder.Star(4))

	assert.Equal(t, 5, fx.Graph.VertexCount())
	assert.Equal(t, 7, fx.Graph.EdgeCount())
	assert.True(t, fx.Graph.HasEdge(fx.Vertex(builder.CenterVertexID), fx.Vertex("2")))
	assert.False(t, fx.Graph.HasEdge(fx.Vertex(builder.CenterVertexID), fx.Vertex("3")))
	assert.Equal(t, []*core.Vertex[string]{fx.Vertex("0"), nil}, fx.Vertices("0", "missing"))
}

func TestBuilders_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Wheel(3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.CompleteBipartite(1, 0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomTree(5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Extremes(t *testing.T) {
	full := build(t, nil, builder.RandomSparse(10, 1))
	assert.Equal(t, 45, full.Graph.EdgeCount())

	empty := build(t, nil, builder.RandomSparse(10, 0))
	assert.Equal(t, 10, empty.Graph.VertexCount())
	assert.Equal(t, 0, empty.Graph.EdgeCount())
}

func TestRandom_DeterministicPerSeed(t *testing.T) {
	opts := func() []builder.BuilderOption { return []builder.BuilderOption{builder.WithSeed(42)} }
	a := build(t, opts(), builder.RandomSparse(40, 0.1))
	b := build(t, opts(), builder.RandomSparse(40, 0.1))
	assert.Equal(t, a.Graph.EdgeCount(), b.Graph.EdgeCount())

	oa, err := bfs.BFS(a.Graph, a.Vertex("0"))
	require.NoError(t, err)
	ob, err := bfs.BFS(b.Graph, b.Vertex("0"))
	require.NoError(t, err)
	assert.Equal(t, oa, ob)
}

func TestRandomTree_IsSpanningAndAcyclic(t *testing.T) {
	fx := build(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomTree(30))
	assert.Equal(t, 29, fx.Graph.EdgeCount())

	cyclic, err := dfs.HasCycle(fx.Graph)
	require.NoError(t, err)
	assert.False(t, cyclic)

	order, err := bfs.BFS(fx.Graph, fx.Vertex("0"))
	require.NoError(t, err)
	assert.Len(t, order, 30)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "ZZ", builder.ExcelColumnIDFn(701))
	assert.Equal(t, "AAA", builder.ExcelColumnIDFn(702))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestWithPartitionPrefix(t *testing.T) {
	fx := build(t, []builder.BuilderOption{builder.WithPartitionPrefix("u", "")}, builder.CompleteBipartite(1, 2))
	assert.NotNil(t, fx.Vertex("u0"))
	assert.NotNil(t, fx.Vertex("R1"), "empty prefix falls back to the default")
}
