// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Neighbors) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - Neighbors() returns edges sorted by creation sequence.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks, in that order.
//   - Helpers are called only under appropriate write locks by mutating code.

package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending. A self-loop lists id itself once.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the adjacency bucket keys and sort them.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	ids := make([]string, 0, len(bucket))
	for nbr := range bucket {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Neighbors returns copies of every edge incident to id, in creation order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		e := g.edges[eid]
		if e.IsNil() {
			continue
		}
		out = append(out, copyEdge(e))
	}
	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out, nil
}

// ensureAdjacency guarantees that adjacency[id] is initialized.
// Must be called ONLY under muEdgeAdj write lock by mutating code paths.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}
