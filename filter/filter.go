// Package filter trims an interaction network to the neighbourhood of a
// seed set.
//
// ByDistance keeps every vertex whose hop distance to the nearest seed is
// within a threshold. Distances come from one multi-source breadth-first
// search, so the cost is O(V + E) regardless of the number of seeds.
package filter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ppinet/bfs"
	"github.com/katalvlaran/ppinet/core"
)

var (
	// ErrParameterRange is returned for a negative threshold.
	ErrParameterRange = errors.New("filter: threshold out of range")

	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("filter: graph is nil")
)

// ByDistance returns the subgraph of g induced by the seeds present in g and
// every vertex at most threshold hops from one of them. Seeds absent from g
// are ignored; an empty result is valid. The result may be disconnected.
func ByDistance(g *core.Graph, seeds []string, threshold int) (*core.Graph, error) {
	keep, err := Distances(g, seeds, threshold)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(keep))
	for id := range keep {
		set[id] = true
	}

	return core.InducedSubgraph(g, set), nil
}

// Distances returns, for every vertex kept by ByDistance, its hop distance
// to the nearest present seed.
func Distances(g *core.Graph, seeds []string, threshold int) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: %d", ErrParameterRange, threshold)
	}
	present := Present(g, seeds)
	if len(present) == 0 {
		return map[string]int{}, nil
	}
	if threshold == 0 {
		out := make(map[string]int, len(present))
		for _, s := range present {
			out[s] = 0
		}
		return out, nil
	}

	res, err := bfs.MultiSource(g, present, bfs.WithMaxDepth(threshold))
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	return res.Depth, nil
}

// Present returns the seeds that are vertices of g, in input order and
// without repeats.
func Present(g *core.Graph, seeds []string) []string {
	out := make([]string, 0, len(seeds))
	seen := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		if seen[s] || !g.HasVertex(s) {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	return out
}
