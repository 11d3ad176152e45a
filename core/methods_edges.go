// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by creation sequence ("e1" < "e2" < "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to carrying a copy of attrs,
// and returns its unique Edge.ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject an already connected pair (ErrMultiEdgeNotAllowed).
//  4. Generate eid atomically, store the edge and mirror adjacency.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(|attrs|) for the attribute copy, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, attrs Attrs) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	linkEdge(g, &Edge{ID: eid, From: from, To: to, Attrs: attrs.Clone()})

	return eid, nil
}

// HasEdge reports whether an edge joins a and b, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeBetween returns a copy of the edge joining a and b, or ErrEdgeNotFound.
// Complexity: O(|attrs|).
func (g *Graph) EdgeBetween(a, b string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[a][b]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return copyEdge(g.edges[eid]), nil
}

// GetEdge returns a copy of the Edge with the given edgeID, or ErrEdgeNotFound.
//
// Contract:
//   - The returned *Edge is independent of the graph; mutating it has no effect.
//   - Errors are strict sentinels (checked via errors.Is).
//
// Complexity: O(|attrs|).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return copyEdge(e), nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, copyEdge(e))
	}
	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Sequence returns the last edge sequence number handed out by this graph.
// Persisted artifacts carry it so restored graphs never reuse an edge ID.
func (g *Graph) Sequence() uint64 {
	return atomic.LoadUint64(&g.nextEdgeID)
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// lessEdgeID orders "e<N>" identifiers by N; shorter digit strings come first.
func lessEdgeID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// copyEdge duplicates e including its attribute map.
func copyEdge(e *Edge) *Edge {
	return &Edge{ID: e.ID, From: e.From, To: e.To, Attrs: e.Attrs.Clone()}
}

// linkEdge stores e in the catalog and mirrors adjacency.
// Must be called under muEdgeAdj write lock; e is owned by g afterwards.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureAdjacency(g, e.From)
	ensureAdjacency(g, e.To)
	g.adjacency[e.From][e.To] = e.ID
	g.adjacency[e.To][e.From] = e.ID
}
