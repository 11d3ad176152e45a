package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/ppinet/core"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is returned when the source or target is absent.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight is returned when a cost function yields a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath is returned by Path when the target is unreachable over
	// traversable edges.
	ErrNoPath = errors.New("dijkstra: no path")
)

// CostFn maps edge attributes to a non-negative cost. ok=false marks the
// edge impassable.
type CostFn func(attrs core.Attrs) (cost float64, ok bool)

// UnitCost charges one per edge, reducing Dijkstra to hop counting.
func UnitCost(core.Attrs) (float64, bool) { return 1, true }

// Options configures a search.
type Options struct {
	Cost        CostFn
	MaxDistance float64 // vertices farther than this are not settled
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions counts hops with no distance bound.
func DefaultOptions() Options {
	return Options{Cost: UnitCost, MaxDistance: math.Inf(1)}
}

// WithCost replaces the cost function. Panics on nil.
func WithCost(fn CostFn) Option {
	if fn == nil {
		panic("dijkstra: WithCost(nil)")
	}
	return func(o *Options) { o.Cost = fn }
}

// WithMaxDistance bounds exploration. Panics on a negative bound.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic("dijkstra: MaxDistance must be non-negative")
	}
	return func(o *Options) { o.MaxDistance = max }
}

// Result holds settled distances and the shortest-path tree.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// PathTo rebuilds the route from Source to target, or ErrNoPath.
func (r *Result) PathTo(target string) ([]string, error) {
	if _, ok := r.Dist[target]; !ok {
		return nil, ErrNoPath
	}
	var path []string
	for cur := target; ; cur = r.Prev[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
