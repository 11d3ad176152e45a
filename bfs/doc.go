// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances, parent links, and visit order.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing hop distance.
//   - MultiSource(g, roots, opts...) seeds every root at depth 0, so Depth[v]
//     is the distance from v to its nearest root. The distance filter uses
//     this to rank every protein against the whole seed set in one pass.
//   - Components, IsConnected and Reachable answer connectivity questions.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted lexicographically and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):         set a custom context for cancellation.
//   - WithMaxDepth(d):          stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn):   skip edges for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):          hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if a root does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
