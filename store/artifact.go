// File: artifact.go
// Role: Versioned binary artifact for persisted graphs.
// Determinism:
//   - Vertices and edges are written in the graph's sorted enumeration order.

package store

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ppinet/core"
)

// Artifact header values.
const (
	Magic   = "ppinet.graph"
	Version = 1
)

// ErrFormat is returned when a stream is not a supported graph artifact.
var ErrFormat = errors.New("store: unsupported artifact format")

// Artifact is the on-disk representation of a graph.
type Artifact struct {
	Magic      string
	Version    int
	ID         string
	CreatedAt  time.Time
	Vertices   []string
	Edges      []ArtifactEdge
	NextEdgeID uint64
}

// ArtifactEdge is one persisted edge.
type ArtifactEdge struct {
	ID    string
	From  string
	To    string
	Attrs map[string]any
}

// Meta describes a stored artifact without its graph payload.
type Meta struct {
	ID        string
	CreatedAt time.Time
	Vertices  int
	Edges     int
}

// NewArtifact snapshots g into a fresh artifact with a random ID.
func NewArtifact(g *core.Graph) *Artifact {
	edges := g.Edges()
	a := &Artifact{
		Magic:      Magic,
		Version:    Version,
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Vertices:   g.Vertices(),
		Edges:      make([]ArtifactEdge, len(edges)),
		NextEdgeID: g.Sequence(),
	}
	for i, e := range edges {
		a.Edges[i] = ArtifactEdge{ID: e.ID, From: e.From, To: e.To, Attrs: e.Attrs}
	}

	return a
}

// Graph rebuilds the graph held by a.
func (a *Artifact) Graph() (*core.Graph, error) {
	edges := make([]core.Edge, len(a.Edges))
	for i, e := range a.Edges {
		edges[i] = core.Edge{ID: e.ID, From: e.From, To: e.To, Attrs: e.Attrs}
	}
	g, err := core.Restore(a.Vertices, edges, a.NextEdgeID)
	if err != nil {
		return nil, fmt.Errorf("store: artifact %s: %w", a.ID, err)
	}

	return g, nil
}

// Meta returns the summary of a.
func (a *Artifact) Meta() Meta {
	return Meta{ID: a.ID, CreatedAt: a.CreatedAt, Vertices: len(a.Vertices), Edges: len(a.Edges)}
}

// Encode writes g to w as a new artifact and returns its metadata.
func Encode(w io.Writer, g *core.Graph) (Meta, error) {
	if g == nil {
		return Meta{}, ErrGraphNil
	}
	a := NewArtifact(g)
	if err := gob.NewEncoder(w).Encode(a); err != nil {
		return Meta{}, fmt.Errorf("store: encode: %w", err)
	}

	return a.Meta(), nil
}

// DecodeArtifact reads one artifact from r and validates its header.
func DecodeArtifact(r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := gob.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if a.Magic != Magic {
		return nil, fmt.Errorf("%w: magic %q", ErrFormat, a.Magic)
	}
	if a.Version != Version {
		return nil, fmt.Errorf("%w: version %d", ErrFormat, a.Version)
	}

	return &a, nil
}

// Decode reads a graph written by Encode.
func Decode(r io.Reader) (*core.Graph, error) {
	a, err := DecodeArtifact(r)
	if err != nil {
		return nil, err
	}

	return a.Graph()
}
