package bfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ppinet/core"
)

// Components returns the connected components of g. Each component is sorted
// lexicographically and components are ordered by their smallest member.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

// IsConnected reports whether g has exactly one connected component.
// An empty graph is not connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return false, nil
	}
	res, err := BFS(g, vs[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vs), nil
}

// errReached stops a Reachable search once the target is dequeued.
var errReached = errors.New("bfs: target reached")

// Reachable reports whether a path of any length joins a and b.
// The search stops as soon as b is visited.
func Reachable(g *core.Graph, a, b string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(b) {
		return false, fmt.Errorf("%w: %q", ErrStartVertexNotFound, b)
	}
	_, err := BFS(g, a, WithOnVisit(func(id string, _ int) error {
		if id == b {
			return errReached
		}
		return nil
	}))
	switch {
	case errors.Is(err, errReached):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}
