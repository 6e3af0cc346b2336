package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig holds the resolved knobs. It is passed by value to
// constructors.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// WithIDScheme sets the index-to-value function used for vertex values.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand supplies the RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG; use it to freeze RandomSparse and RandomTree.
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithPartitionPrefix sets the CompleteBipartite side prefixes. Empty values
// fall back to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// mustIndex guards IDFn implementations against negative indices.
func mustIndex(name string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", name, idx))
	}
}
