package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/ugraph/core"
)

func observedGraph(opts ...core.GraphOption) (*core.Graph[string], *zapobserver.ObservedLogs) {
	zc, logs := zapobserver.New(zapcore.DebugLevel)
	opts = append(opts, core.WithLogger(zap.New(zc)))
	return core.NewGraph[string](opts...), logs
}

func TestGraph_DefaultLoggerIsNop(t *testing.T) {
	g := core.NewGraph[string]()
	require.NotNil(t, g.Logger())

	g = core.NewGraph[string](core.WithLogger(nil), core.WithObserver(nil))
	require.NotNil(t, g.Logger())
	// a nil observer must not be installed
	g.Report(core.TraversalStats{Op: core.OpDFS})
}

func TestGraph_LogsMutations(t *testing.T) {
	g, logs := observedGraph()
	a, b := core.NewVertex("A"), core.NewVertex("B")

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.RemoveEdge(a, b))
	require.NoError(t, g.RemoveEdge(a, b))
	require.NoError(t, g.RemoveVertex(a))
	g.Clear()

	assert.Equal(t, 2, logs.FilterMessage("vertex added").Len())
	assert.Equal(t, 1, logs.FilterMessage("edge added").Len(), "duplicate edge is silent")
	assert.Equal(t, 1, logs.FilterMessage("edge removed").Len())
	assert.Equal(t, 1, logs.FilterMessage("vertex removed").Len())
	assert.Equal(t, 1, logs.FilterMessage("graph cleared").Len())

	added := logs.FilterMessage("edge added").All()[0]
	assert.Equal(t, zapcore.DebugLevel, added.Level)
	assert.Equal(t, a.String(), added.ContextMap()["v1"])
}

func TestGraph_ReportForwardsAndLogs(t *testing.T) {
	var got []core.TraversalStats
	g, logs := observedGraph(core.WithObserver(core.ObserverFunc(func(s core.TraversalStats) {
		got = append(got, s)
	})))

	stats := core.TraversalStats{Op: core.OpBFS, Start: "A", Visited: 3, Frames: 3, Elapsed: time.Millisecond}
	g.Report(stats)

	require.Len(t, got, 1)
	assert.Equal(t, stats, got[0])

	entries := logs.FilterMessage("traversal finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, core.OpBFS, fields["op"])
	assert.Equal(t, int64(3), fields["visited"])
}
