package builder

import (
	"fmt"

	"github.com/katalvlaran/ppinet/core"
)

// Constructor mutates g using the resolved configuration. Constructors
// validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge links a and b, attaching a score when the config asks for one.
func addEdge(g *core.Graph, cfg builderConfig, a, b string, attrs core.Attrs) error {
	if cfg.scoreFn != nil {
		if cfg.rng == nil {
			return ErrNeedRandSource
		}
		if attrs == nil {
			attrs = core.Attrs{}
		}
		attrs["combined_score"] = cfg.scoreFn(cfg.rng)
	}
	_, err := g.AddEdge(a, b, attrs)

	return err
}
