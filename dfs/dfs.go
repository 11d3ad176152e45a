package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ppinet/core"
)

// errLimit unwinds the recursion once Limit paths were collected.
var errLimit = errors.New("dfs: path limit reached")

// pathWalker encapsulates state during simple-path enumeration.
type pathWalker struct {
	graph   *core.Graph     // underlying graph
	opts    DFSOptions      // walk options
	target  string          // destination vertex
	stack   []string        // current path from source
	onStack map[string]bool // vertices of stack
	out     [][]string      // collected paths
}

// SimplePaths enumerates every simple path from source to target in g.
// A path never repeats a vertex and ends as soon as it reaches target.
// Neighbors are explored in lexicographic order, so the result order is
// deterministic: paths are emitted in depth-first discovery order.
//
// When source == target the single trivial path [source] is returned.
//
// Complexity: exponential in the worst case; bound it with WithMaxEdges.
func SimplePaths(g *core.Graph, source, target string, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, id := range []string{source, target} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, id)
		}
	}

	w := &pathWalker{
		graph:   g,
		opts:    o,
		target:  target,
		onStack: make(map[string]bool),
	}
	err := w.visit(source)
	if errors.Is(err, errLimit) {
		err = nil
	}
	if err != nil {
		return nil, err
	}

	return w.out, nil
}

// visit pushes id onto the current path, reports it if it is the target,
// and otherwise recurses into every admissible neighbor.
func (w *pathWalker) visit(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.stack = append(w.stack, id)
	w.onStack[id] = true
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		delete(w.onStack, id)
	}()

	if id == w.target {
		return w.emit()
	}
	// len(stack)-1 edges used so far
	if w.opts.MaxEdges > 0 && len(w.stack)-1 >= w.opts.MaxEdges {
		return nil
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if w.onStack[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && nid != w.target && !w.opts.FilterNeighbor(nid) {
			continue
		}
		if err = w.visit(nid); err != nil {
			return err
		}
	}

	return nil
}

// emit records a copy of the current stack.
func (w *pathWalker) emit() error {
	path := append([]string(nil), w.stack...)
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(append([]string(nil), path...)); err != nil {
			return fmt.Errorf("dfs: OnPath hook: %w", err)
		}
	}
	w.out = append(w.out, path)
	if w.opts.Limit > 0 && len(w.out) >= w.opts.Limit {
		return errLimit
	}

	return nil
}
