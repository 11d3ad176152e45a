package filter

import (
	"github.com/katalvlaran/ppinet/bfs"
	"github.com/katalvlaran/ppinet/core"
)

// Report summarizes one filtering step for logging and metrics.
type Report struct {
	Before       core.GraphStats
	After        core.GraphStats
	SeedsPresent int
	SeedsMissing []string
	Components   int
	Connected    bool
}

// Removed returns how many vertices the step dropped.
func (r Report) Removed() int { return r.Before.VertexCount - r.After.VertexCount }

// Inspect compares an input graph with its filtered result. Connectivity of
// the result is an observation only; a disconnected result is not an error.
func Inspect(before, after *core.Graph, seeds []string) (Report, error) {
	if before == nil || after == nil {
		return Report{}, ErrGraphNil
	}
	comps, err := bfs.Components(after)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Before:       before.Stats(),
		After:        after.Stats(),
		SeedsPresent: len(Present(before, seeds)),
		Components:   len(comps),
		Connected:    len(comps) == 1,
	}
	seen := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		if !seen[s] && !before.HasVertex(s) {
			r.SeedsMissing = append(r.SeedsMissing, s)
		}
		seen[s] = true
	}

	return r, nil
}
