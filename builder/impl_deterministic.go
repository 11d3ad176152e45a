package builder

import (
	"fmt"

	"github.com/katalvlaran/ppinet/core"
)

const (
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"
)

// Path builds the chain idFn(0)–idFn(1)–…–idFn(n-1). Requires n >= 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodPath, n, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, cfg.idFn(i-1), cfg.idFn(i), nil); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// Star joins center to n leaves named idFn(0)..idFn(n-1). Requires n >= 1.
func Star(center string, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodStar, n, ErrTooFewVertices)
		}
		if err := g.AddVertex(center); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, center, err)
		}
		for i := 0; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addEdge(g, cfg, center, leaf, nil); err != nil {
				return fmt.Errorf("%s: %s-%s: %w", methodStar, center, leaf, err)
			}
		}

		return nil
	}
}

// Complete builds the clique over idFn(0)..idFn(n-1). Requires n >= 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: %w", methodComplete, err)
			}
			for j := 0; j < i; j++ {
				if err := addEdge(g, cfg, cfg.idFn(j), cfg.idFn(i), nil); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
