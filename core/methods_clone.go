// File: methods_clone.go
// Role: Cloning and restoring graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import (
	"fmt"
	"sync/atomic"
)

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Complexity: O(V) to copy vertices and initialize adjacency.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges
// (attributes included), and adjacency. Edge IDs are preserved.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		linkEdge(clone, copyEdge(e))
	}

	return clone
}

// Restore rebuilds a graph from a persisted snapshot: vertex IDs, edges with
// their original IDs, and the edge sequence counter. The counter is raised to
// at least the highest restored sequence so future AddEdge calls never collide.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrEdgeIDConflict, each wrapped with the offending edge.
//
// Complexity: O(V + E).
func Restore(vertices []string, edges []Edge, sequence uint64, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("core: restore vertex %q: %w", id, err)
		}
	}

	maxSeq := sequence
	for i := range edges {
		e := edges[i]
		if e.ID == "" || e.From == "" || e.To == "" {
			return nil, fmt.Errorf("core: restore edge %d: %w", i, ErrEmptyVertexID)
		}
		if e.From == e.To && !g.allowLoops {
			return nil, fmt.Errorf("core: restore edge %s: %w", e.ID, ErrLoopNotAllowed)
		}
		if _, dup := g.edges[e.ID]; dup {
			return nil, fmt.Errorf("core: restore edge %s: %w", e.ID, ErrEdgeIDConflict)
		}
		if g.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("core: restore edge %s: %w", e.ID, ErrMultiEdgeNotAllowed)
		}
		if err := g.AddVertex(e.From); err != nil {
			return nil, fmt.Errorf("core: restore edge %s: %w", e.ID, err)
		}
		if err := g.AddVertex(e.To); err != nil {
			return nil, fmt.Errorf("core: restore edge %s: %w", e.ID, err)
		}
		linkEdge(g, copyEdge(&e))
		if n := edgeSequence(e.ID); n > maxSeq {
			maxSeq = n
		}
	}
	atomic.StoreUint64(&g.nextEdgeID, maxSeq)

	return g, nil
}

// options reproduces the construction-time configuration of g.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// edgeSequence extracts N from "e<N>"; foreign IDs yield 0.
func edgeSequence(id string) uint64 {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return 0
	}
	var n uint64
	for _, c := range id[1:] {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + uint64(c-'0')
	}

	return n
}
