package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ppinet/combine"
	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/edgelist"
	"github.com/katalvlaran/ppinet/filter"
	"github.com/katalvlaran/ppinet/internal/config"
)

// AssembleResult is the outcome of Assemble.
type AssembleResult struct {
	Combined *core.Graph
	Master   *core.Graph
	Report   filter.Report
	DOTPath  string
}

// input is one edge-list file bound to its source.
type input struct {
	source config.Source
	cols   edgelist.Columns
	path   string
}

// Assemble loads every configured source, combines the resulting graphs in
// configuration order, filters the union around the seeds and stores both
// the combined and the filtered (master) network. Output files are written
// before any graph is stored, so nothing is stored when a stage fails.
func (p *Pipeline) Assemble(ctx context.Context) (*AssembleResult, error) {
	seeds, err := p.readSeeds()
	if err != nil {
		return nil, err
	}
	inputs, err := p.inputs()
	if err != nil {
		return nil, err
	}

	graphs, err := p.loadAll(ctx, inputs)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	combined, err := combine.Combine(graphs)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	p.observe("combine", combined, started)

	master, report, err := p.filter(combined, seeds, p.cfg.Threshold)
	if err != nil {
		return nil, err
	}

	dot, err := p.writeDOT(GraphMaster, master, seeds)
	if err != nil {
		return nil, err
	}
	if err = p.flushMetrics(); err != nil {
		return nil, err
	}
	if err = p.save(ctx, GraphCombined, combined); err != nil {
		return nil, err
	}
	if err = p.save(ctx, GraphMaster, master); err != nil {
		return nil, err
	}

	return &AssembleResult{Combined: combined, Master: master, Report: report, DOTPath: dot}, nil
}

// inputs expands the source globs. Files of one source are sorted so the
// combine order is stable.
func (p *Pipeline) inputs() ([]input, error) {
	var out []input
	for _, src := range p.cfg.Sources {
		cols, err := src.Columns()
		if err != nil {
			return nil, fmt.Errorf("pipeline: source %s: %w", src.Name, err)
		}
		var files []string
		for _, pattern := range src.Paths {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, fmt.Errorf("pipeline: source %s: %w", src.Name, err)
			}
			files = append(files, matches...)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: source %s matches nothing", ErrNoInput, src.Name)
		}
		sort.Strings(files)
		for _, f := range files {
			out = append(out, input{source: src, cols: cols, path: f})
		}
	}

	return out, nil
}

// loadAll builds one graph per input concurrently, sharing the ego worker
// budget. Results keep input order.
func (p *Pipeline) loadAll(ctx context.Context, inputs []input) ([]*core.Graph, error) {
	graphs := make([]*core.Graph, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.cfg.Ego.Workers)
	for i, in := range inputs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			g, err := p.load(in)
			if err != nil {
				return err
			}
			graphs[i] = g
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return graphs, nil
}

// load reads and builds a single edge-list file.
func (p *Pipeline) load(in input) (*core.Graph, error) {
	started := time.Now()
	f, err := os.Open(in.path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer f.Close()

	tbl, err := edgelist.ReadTable(f, in.source.Delim())
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", in.path, err)
	}
	g, err := edgelist.Build(tbl, in.cols)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", in.path, err)
	}
	p.metrics.AddRows(in.source.Name, tbl.Len())
	p.log.WithFields(logrus.Fields{
		"stage":    "build",
		"source":   in.source.Name,
		"path":     in.path,
		"rows":     tbl.Len(),
		"nodes":    g.VertexCount(),
		"edges":    g.EdgeCount(),
		"duration": time.Since(started).String(),
	}).Info("edge list loaded")

	return g, nil
}

// filter trims g around seeds and logs the observation report. A
// disconnected result is reported, not rejected.
func (p *Pipeline) filter(g *core.Graph, seeds []string, threshold int) (*core.Graph, filter.Report, error) {
	started := time.Now()
	out, err := filter.ByDistance(g, seeds, threshold)
	if err != nil {
		return nil, filter.Report{}, fmt.Errorf("pipeline: %w", err)
	}
	p.observe("filter", out, started)

	report, err := filter.Inspect(g, out, seeds)
	if err != nil {
		return nil, filter.Report{}, fmt.Errorf("pipeline: %w", err)
	}
	entry := p.log.WithFields(logrus.Fields{
		"stage":      "filter",
		"threshold":  threshold,
		"removed":    report.Removed(),
		"components": report.Components,
		"connected":  report.Connected,
	})
	entry.Info("filtered graph inspected")
	if len(report.SeedsMissing) > 0 {
		entry.WithField("missing", report.SeedsMissing).Warn("seeds absent from graph")
	}

	return out, report, nil
}
