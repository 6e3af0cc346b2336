package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// CenterVertexID is the value of the hub in Star and Wheel.
const CenterVertexID = "Center"

// Fixture is a built graph plus a value-to-vertex index.
type Fixture struct {
	Graph *core.Graph[string]
	byID  map[string]*core.Vertex[string]
}

// Vertex returns the vertex holding id, or nil when none was built.
func (f *Fixture) Vertex(id string) *core.Vertex[string] { return f.byID[id] }

// Vertices resolves ids in order; unknown ids yield nil entries.
func (f *Fixture) Vertices(ids ...string) []*core.Vertex[string] {
	out := make([]*core.Vertex[string], len(ids))
	for i, id := range ids {
		out[i] = f.byID[id]
	}
	return out
}

// vertex returns the vertex for id, creating and registering it on first use.
func (f *Fixture) vertex(method, id string) (*core.Vertex[string], error) {
	if v, ok := f.byID[id]; ok {
		return v, nil
	}
	v := core.NewVertex(id)
	if err := f.Graph.AddVertex(v); err != nil {
		return nil, fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, ErrConstructFailed, err)
	}
	f.byID[id] = v

	return v, nil
}

// edge connects the vertices holding u and v, creating them if needed.
func (f *Fixture) edge(method, u, v string) error {
	a, err := f.vertex(method, u)
	if err != nil {
		return err
	}
	b, err := f.vertex(method, v)
	if err != nil {
		return err
	}
	if err = f.Graph.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// Constructor applies one deterministic topology to the fixture.
type Constructor func(f *Fixture, cfg builderConfig) error

// BuildGraph creates a core.Graph[string] with gopts, resolves bopts and runs
// cons in order. The first constructor error is returned wrapped; the partial
// graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	f := &Fixture{
		Graph: core.NewGraph[string](gopts...),
		byID:  make(map[string]*core.Vertex[string]),
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return f, nil
}
