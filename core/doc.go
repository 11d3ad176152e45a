// Package core provides a thread-safe, in-memory undirected simple Graph used
// as the data model of every ppinet stage.
//
// The Graph G = (V,E) stores:
//
//   - Vertices: case-sensitive, opaque protein identifiers (non-empty strings).
//   - Edges: unordered pairs of distinct vertices, each with a monotonic textual
//     ID (“e1”, “e2”, …) and an Attrs map (scores, source tags).
//   - Constant-time adjacency via a mirrored nested map:
//     adjacency[u][v] = edgeID
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Value semantics:
//
//	Derivations never mutate their input. Clone, CloneEmpty and InducedSubgraph
//	return fresh graphs, and every edge handed out by Edges, Neighbors,
//	EdgeBetween or GetEdge is a copy, so one snapshot may safely feed several
//	downstream operations.
//
// Policy:
//
//	– A second AddEdge on an already connected pair (either orientation)
//	  returns ErrMultiEdgeNotAllowed. Callers that want first-occurrence-wins
//	  semantics check HasEdge first.
//	– Self-loops return ErrLoopNotAllowed unless the graph was built WithLoops().
//
// Core Methods:
//
//	AddVertex(id string) error                               // O(1)
//	HasVertex(id string) bool                                // O(1)
//	AddEdge(from, to string, attrs Attrs) (string, error)    // O(|attrs|)
//	HasEdge(a, b string) bool                                // O(1)
//	EdgeBetween(a, b string) (*Edge, error)                  // O(|attrs|)
//	NeighborIDs(id string) ([]string, error)                 // O(d·log d), unique, sorted
//	Vertices() []string                                      // O(V·log V)
//	Edges() []*Edge                                          // O(E·log E)
//	Clone() *Graph                                           // O(V+E)
//	InducedSubgraph(g *Graph, keep map[string]bool) *Graph   // O(V+E)
//	Restore(vertices, edges, sequence, opts...)              // O(V+E)
package core
