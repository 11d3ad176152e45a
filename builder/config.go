package builder

import (
	"math/rand"
)

// builderConfig is the resolved set of options handed to every Constructor.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand

	// scoreFn, when set, attaches a "combined_score" attribute to every edge.
	scoreFn func(*rand.Rand) float64
}

// BuilderOption customizes a build before any constructor runs.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator used by deterministic constructors.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSeed installs a rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs r as the random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithScores makes every constructed edge carry a "combined_score" drawn
// uniformly from [lo, hi). Requires a random source.
func WithScores(lo, hi float64) BuilderOption {
	return func(c *builderConfig) {
		c.scoreFn = func(r *rand.Rand) float64 { return lo + r.Float64()*(hi-lo) }
	}
}
