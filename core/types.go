// Package core defines the central Graph and Edge types used by every ppinet
// stage, and provides thread-safe primitives for building, querying, and
// deriving protein interaction graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so readers may share one graph snapshot
// across goroutines.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same unordered pair.
//	ErrEdgeIDConflict      - restoring two edges with the same ID.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge between an already connected pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEdgeIDConflict indicates Restore received two edges with the same ID.
	ErrEdgeIDConflict = errors.New("core: duplicate edge ID")
)

// Attrs is the open-ended attribute mapping carried by an edge
// (interaction scores as float64, source tags as string).
//
// Values are expected to be plain scalars so that persisted artifacts can
// round-trip them exactly.
type Attrs map[string]any

// Clone returns an independent copy of a. A nil receiver yields an empty map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Edge represents an undirected connection between two distinct proteins.
//
// ID is unique within its Graph; From/To preserve the orientation the edge was
// first registered with, but carry no direction semantics.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint, as registered.
	From string

	// To is the second endpoint, as registered.
	To string

	// Attrs holds the edge metadata. Graph methods hand out copies.
	Attrs Attrs
}

// IsNil reports whether the receiver is nil.
func (e *Edge) IsNil() bool { return e == nil }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// Builders in this module never produce them; the option exists for callers
// that load foreign data and want to keep it verbatim.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected simple graph of protein identifiers.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog and
// the adjacency index. Lock order is always muVert -> muEdgeAdj.
//
// adjacency[u][v] holds the ID of the single edge joining u and v and is
// mirrored for both endpoints.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool

	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID -> Edge
	adjacency  map[string]map[string]string
}

// NewGraph creates an empty Graph. By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes, used for logging and
// admission checks by pipeline stages.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolatedCount int
	AllowsLoops   bool
}
