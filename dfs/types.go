package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to SimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the source or target vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of path enumeration.
// Use with SimplePaths(g, source, target, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for path enumeration.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort the walk early.
	Ctx context.Context

	// MaxEdges, if positive, bounds the number of edges in a reported path.
	// Zero means no bound.
	MaxEdges int

	// Limit, if positive, stops the walk after that many paths were found.
	Limit int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before
	// stepping onto it. Return true to traverse into that neighbor.
	FilterNeighbor func(id string) bool

	// OnPath, if non-nil, receives every path as it is found. The slice is a
	// private copy. Returning an error aborts the walk with that error.
	OnPath func(path []string) error

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No edge bound and no path limit
//   - No neighbor filtering
//   - No path hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxEdges bounds reported paths to at most n edges (n+1 vertices).
// Negative n is recorded as ErrOptionViolation.
func WithMaxEdges(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxEdges cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxEdges = n
	}
}

// WithLimit stops the walk once n paths were collected.
// Negative n is recorded as ErrOptionViolation.
func WithLimit(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithOnPath registers a hook invoked for every path found.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *DFSOptions) { o.OnPath = fn }
}
