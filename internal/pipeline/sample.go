package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/core"
)

// GraphSample is the store name used by Sample.
const GraphSample = "random_graph"

// SampleParams describes a synthetic star network around one protein.
type SampleParams struct {
	Center string
	Leaves int
	// MinRadius and MaxRadius bound the "radius" attribute of each spoke.
	MinRadius, MaxRadius float64
	Seed                 int64
}

// SampleResult is the outcome of Sample.
type SampleResult struct {
	Graph   *core.Graph
	DOTPath string
}

// Sample builds a random star around params.Center, stores it as
// GraphSample and renders it with the center highlighted. Useful for
// exercising stores and renderers without real interaction data.
func (p *Pipeline) Sample(ctx context.Context, params SampleParams) (*SampleResult, error) {
	started := time.Now()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(params.Seed)},
		builder.RandomStar(params.Center, params.Leaves, params.MinRadius, params.MaxRadius),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: sample: %w", err)
	}
	p.observe("sample", g, started)
	dot, err := p.writeDOT(GraphSample, g, []string{params.Center})
	if err != nil {
		return nil, err
	}
	if err = p.flushMetrics(); err != nil {
		return nil, err
	}
	if err = p.save(ctx, GraphSample, g); err != nil {
		return nil, err
	}

	return &SampleResult{Graph: g, DOTPath: dot}, nil
}
