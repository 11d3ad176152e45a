// Package ppinet assembles protein–protein interaction networks from
// tabular edge lists and answers neighbourhood and path queries on them.
//
// The module is organised bottom-up:
//
//	core      thread-safe undirected simple graph with attributed edges
//	bfs, dfs  traversal: multi-source distances, bounded simple paths
//	dijkstra  least-cost routes, by default the fewest hops
//	edgelist  TSV/CSV tables to graphs, with STRING/paralog/ortholog presets
//	combine   union of several graphs, first graph wins on shared edges
//	filter    keep vertices within a hop distance of a seed set
//	paths     every simple path between two proteins up to a length bound
//	ego       neighbourhood subgraph around one or many centers
//	builder   synthetic graphs for fixtures and demos
//	store     graph persistence on disk or in Badger
//	render    Graphviz DOT output with seeds highlighted
//
// The ppinet command in cmd/ppinet wires these into a configurable
// pipeline (internal/pipeline):
//
//	ppinet assemble            # load, combine, filter, store "master"
//	ppinet augment             # add paralogs and orthologs
//	ppinet paths JAK2 IL6R     # bounded paths on the master graph
//	ppinet ego STAT3           # neighbourhoods of the given centers
//
// Every transformation returns a new graph; inputs are never mutated.
package ppinet
