// Package ego extracts radius-bounded neighbourhoods around proteins.
//
// Graph returns the subgraph induced by every vertex within a hop radius of
// a center. Batch runs many such extractions concurrently against one
// shared, read-only graph.
package ego

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ppinet/bfs"
	"github.com/katalvlaran/ppinet/core"
)

var (
	// ErrNodeNotFound is returned when a center is not in the graph.
	ErrNodeNotFound = fmt.Errorf("ego: %w", core.ErrVertexNotFound)

	// ErrParameterRange is returned for a negative radius.
	ErrParameterRange = errors.New("ego: radius out of range")

	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("ego: graph is nil")
)

// Graph returns the subgraph of g induced by the vertices at hop distance
// at most radius from center. Radius 0 yields the single isolated center.
func Graph(g *core.Graph, center string, radius int) (*core.Graph, error) {
	return extract(context.Background(), g, center, radius)
}

func extract(ctx context.Context, g *core.Graph, center string, radius int) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrParameterRange, radius)
	}
	if !g.HasVertex(center) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, center)
	}
	if radius == 0 {
		return core.InducedOn(g, []string{center}), nil
	}

	res, err := bfs.BFS(g, center, bfs.WithMaxDepth(radius), bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("ego: %w", err)
	}

	return core.InducedOn(g, res.Order), nil
}

// Batch extracts the neighbourhood of every center concurrently, with at
// most workers extractions in flight (GOMAXPROCS when workers <= 0). The
// first failure cancels the remaining work and is returned. Repeated
// centers are extracted once.
func Batch(ctx context.Context, g *core.Graph, centers []string, radius, workers int) (map[string]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrParameterRange, radius)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	uniq := make([]string, 0, len(centers))
	seen := make(map[string]bool, len(centers))
	for _, c := range centers {
		if !seen[c] {
			seen[c] = true
			uniq = append(uniq, c)
		}
	}

	results := make([]*core.Graph, len(uniq))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range uniq {
		eg.Go(func() error {
			sub, err := extract(egCtx, g, c, radius)
			if err != nil {
				return fmt.Errorf("center %q: %w", c, err)
			}
			results[i] = sub
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*core.Graph, len(uniq))
	for i, c := range uniq {
		out[c] = results[i]
	}

	return out, nil
}
