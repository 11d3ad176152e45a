// Package builder assembles synthetic interaction graphs for fixtures,
// demos and smoke runs of the pipeline.
//
// A build is a list of Constructors applied in order to a fresh
// core.Graph:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomStar("PTX4", 20, 1, 5),
//	)
//
// Deterministic constructors (Path, Star, Complete) name their vertices
// through an IDFn; stochastic ones (RandomStar, RandomSparse) require a
// random source set with WithSeed or WithRand and yield identical graphs
// for identical seeds.
package builder
