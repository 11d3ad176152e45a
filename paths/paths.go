// Package paths extracts the bounded simple paths between two proteins and
// the subgraph they span.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/ppinet/bfs"
	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/dfs"
)

// Bounds of the maxNodes argument, both exclusive.
const (
	MinMaxNodes = 2
	MaxMaxNodes = 10
)

var (
	// ErrParameterRange is returned when maxNodes is outside (2, 10) or the
	// two endpoints coincide.
	ErrParameterRange = errors.New("paths: parameter out of range")

	// ErrNodeNotFound is returned when source or target is not in the graph.
	ErrNodeNotFound = fmt.Errorf("paths: %w", core.ErrVertexNotFound)

	// ErrPathNotFound is returned when source and target are disconnected.
	ErrPathNotFound = errors.New("paths: no path between source and target")

	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrFilename is returned by EndpointsFromFilename for a malformed name.
	ErrFilename = errors.New("paths: filename must look like SOURCE_TARGET.ext")
)

// Result is the outcome of Extract.
type Result struct {
	// Paths lists every simple path from source to target with at most
	// maxNodes+1 vertices, in depth-first order over sorted neighbors.
	Paths [][]string
	// Internal is the sorted union of the interior vertices of Paths.
	Internal []string
	// Subgraph is induced on source, target and Internal.
	Subgraph *core.Graph
}

// Extract enumerates the simple paths from source to target whose vertex
// count does not exceed maxNodes+1 (so maxNodes bounds the edge count) and
// returns them with the induced subgraph over their vertices.
//
// Preconditions are checked before any traversal: 2 < maxNodes < 10 and
// source != target (ErrParameterRange), both endpoints present
// (ErrNodeNotFound). A disconnected pair fails with ErrPathNotFound. A
// connected pair whose every path is too long yields no paths and a
// subgraph of the two endpoints.
func Extract(g *core.Graph, source, target string, maxNodes int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxNodes <= MinMaxNodes || maxNodes >= MaxMaxNodes {
		return nil, fmt.Errorf("%w: maxNodes=%d, want %d < maxNodes < %d",
			ErrParameterRange, maxNodes, MinMaxNodes, MaxMaxNodes)
	}
	if source == target {
		return nil, fmt.Errorf("%w: source and target are both %q", ErrParameterRange, source)
	}
	for _, id := range []string{source, target} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	ok, err := bfs.Reachable(g, source, target)
	if err != nil {
		return nil, fmt.Errorf("paths: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q and %q", ErrPathNotFound, source, target)
	}

	found, err := dfs.SimplePaths(g, source, target, dfs.WithMaxEdges(maxNodes))
	if err != nil {
		return nil, fmt.Errorf("paths: %w", err)
	}

	internal := InternalNodes(found)
	keep := map[string]bool{source: true, target: true}
	for _, id := range internal {
		keep[id] = true
	}

	return &Result{
		Paths:    found,
		Internal: internal,
		Subgraph: core.InducedSubgraph(g, keep),
	}, nil
}

// InternalNodes returns the sorted distinct interior vertices of paths.
func InternalNodes(paths [][]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range paths {
		if len(p) < 3 {
			continue
		}
		for _, id := range p[1 : len(p)-1] {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	sort.Strings(out)

	return out
}

// EndpointsFromFilename splits a query file name of the form
// SOURCE_TARGET.tsv into its two protein names.
func EndpointsFromFilename(name string) (source, target string, err error) {
	base := filepath.Base(name)
	parts := strings.Split(base, "_")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrFilename, base)
	}
	source = parts[0]
	target = parts[1]
	if i := strings.IndexByte(target, '.'); i >= 0 {
		target = target[:i]
	}
	if source == "" || target == "" {
		return "", "", fmt.Errorf("%w: %q", ErrFilename, base)
	}

	return source, target, nil
}
