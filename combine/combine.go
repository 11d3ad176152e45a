// Package combine merges several interaction graphs into one.
//
// Vertices are united and edges are united by unordered endpoint pair. When
// more than one input carries the same pair, the earliest graph in input
// order supplies its attributes, so the result topology does not depend on
// input order but the attributes do.
package combine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ppinet/core"
)

var (
	// ErrEmptyInput is returned when no graphs are supplied.
	ErrEmptyInput = errors.New("combine: no graphs to combine")

	// ErrNilGraph is returned when one of the inputs is nil.
	ErrNilGraph = errors.New("combine: graph is nil")
)

// Combine returns a new graph holding the union of graphs. Inputs are not
// modified. A single input yields an independent copy with fresh edge IDs.
//
// Complexity: O(sum of V + E) over the inputs.
func Combine(graphs []*core.Graph) (*core.Graph, error) {
	if len(graphs) == 0 {
		return nil, ErrEmptyInput
	}
	for i, g := range graphs {
		if g == nil {
			return nil, fmt.Errorf("%w: input %d", ErrNilGraph, i)
		}
	}

	out := core.NewGraph()
	for i, g := range graphs {
		if err := merge(out, g); err != nil {
			return nil, fmt.Errorf("combine: input %d: %w", i, err)
		}
	}

	return out, nil
}

// merge copies the vertices of src into dst, plus every edge whose pair is
// not yet in dst.
func merge(dst, src *core.Graph) error {
	for _, v := range src.Vertices() {
		if err := dst.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range src.Edges() {
		if dst.HasEdge(e.From, e.To) {
			continue
		}
		if _, err := dst.AddEdge(e.From, e.To, e.Attrs); err != nil {
			return err
		}
	}

	return nil
}
