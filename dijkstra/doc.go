// Package dijkstra finds least-cost routes through an interaction graph.
//
// By default every edge costs one, so Path returns a minimum-hop route.
// The heap orders equal distances by vertex ID, so results are repeatable.
// WithCost derives costs from edge attributes instead, and a CostFn may
// mark edges impassable, e.g. to route around a protein.
// Complexity: O((V + E) log V) with a lazy-deletion binary heap.
package dijkstra
