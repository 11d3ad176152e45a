package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ppinet/core"
)

const (
	methodRandomStar   = "RandomStar"
	methodRandomSparse = "RandomSparse"

	// maxNameDraws bounds attempts to draw an unused random leaf name.
	maxNameDraws = 64
)

// RandomStar joins center to n leaves with random five-letter lowercase
// names. Each spoke carries a "radius" drawn from [k1, k2) and an "angle"
// in radians drawn from [0, 2π), the polar placement of the leaf around
// the center. Leaf names never repeat within the graph.
func RandomStar(center string, n int, k1, k2 float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		switch {
		case n < 1:
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomStar, n, ErrTooFewVertices)
		case k1 < 0 || k2 <= k1:
			return fmt.Errorf("%s: radius range [%g,%g): %w", methodRandomStar, k1, k2, ErrInvalidRange)
		case cfg.rng == nil:
			return fmt.Errorf("%s: %w", methodRandomStar, ErrNeedRandSource)
		}
		if err := g.AddVertex(center); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomStar, center, err)
		}
		for i := 0; i < n; i++ {
			leaf, err := freshName(g, cfg)
			if err != nil {
				return fmt.Errorf("%s: leaf %d: %w", methodRandomStar, i, err)
			}
			attrs := core.Attrs{
				"angle":  cfg.rng.Float64() * 2 * math.Pi,
				"radius": k1 + cfg.rng.Float64()*(k2-k1),
			}
			if err := addEdge(g, cfg, center, leaf, attrs); err != nil {
				return fmt.Errorf("%s: %s-%s: %w", methodRandomStar, center, leaf, err)
			}
		}

		return nil
	}
}

func freshName(g *core.Graph, cfg builderConfig) (string, error) {
	for try := 0; try < maxNameDraws; try++ {
		if name := randomName(cfg.rng); !g.HasVertex(name) {
			return name, nil
		}
	}

	return "", ErrConstructFailed
}

// RandomSparse samples a G(n, p) graph over idFn(0)..idFn(n-1): every
// unordered pair is linked independently with probability p. Trials run
// in (i, j>i) ascending order so a fixed seed gives a fixed graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		switch {
		case n < 1:
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		case p < 0 || p > 1:
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		case cfg.rng == nil:
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: %w", methodRandomSparse, err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, cfg.idFn(i), cfg.idFn(j), nil); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
