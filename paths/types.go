package paths

import "errors"

// NoPath is the length returned together with ErrNoPath.
const NoPath = -1

// Sentinel errors returned by ShortestPath.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrNoPath indicates that the target is not reachable from the source.
	ErrNoPath = errors.New("paths: no path")
)
