// Package dfs enumerates simple paths between two vertices of a core.Graph
// with a recursive depth-first walker.
//
// Key features:
//   - SimplePaths(g, source, target, opts...): every path without a repeated vertex
//   - Deterministic: neighbors are explored in lexicographic order
//   - Limits: MaxEdges bounds path length, Limit bounds path count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   exponential in the worst case (dense graphs); MaxEdges keeps it tractable.
//   - Memory: O(V) for the recursion stack plus the size of the output.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithMaxEdges(n)           report only paths with at most n edges.
//   - WithLimit(n)              stop after n paths.
//   - WithFilterNeighbor(fn)    filters interior vertex IDs; return false to skip.
//   - WithOnPath(fn)            hook for each path; error aborts the walk.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if source or target is missing.
//   - ErrOptionViolation        for negative MaxEdges or Limit.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnPath.
package dfs
