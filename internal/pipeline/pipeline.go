// Package pipeline orchestrates network assembly and queries: loading edge
// lists, combining and filtering them, persisting the results and running
// path and neighbourhood queries against stored graphs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/edgelist"
	"github.com/katalvlaran/ppinet/internal/config"
	"github.com/katalvlaran/ppinet/internal/metrics"
	"github.com/katalvlaran/ppinet/render"
	"github.com/katalvlaran/ppinet/store"
)

// Names of the graphs written by the assembly stages.
const (
	GraphCombined  = "combined"
	GraphMaster    = "master"
	GraphAugmented = "augmented"
)

// ErrNoInput is returned when a source glob matches no file.
var ErrNoInput = errors.New("pipeline: no input files")

// Pipeline runs stages with one configuration, store and logger.
type Pipeline struct {
	cfg     *config.Config
	store   store.Store
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

// New returns a Pipeline. A nil metrics value disables metric collection.
func New(cfg *config.Config, st store.Store, log logrus.FieldLogger, m *metrics.Metrics) *Pipeline {
	if m == nil {
		m = metrics.New()
	}

	return &Pipeline{cfg: cfg, store: st, log: log, metrics: m}
}

// Metrics returns the collectors of this pipeline.
func (p *Pipeline) Metrics() *metrics.Metrics { return p.metrics }

// observe logs and records one finished stage.
func (p *Pipeline) observe(stage string, g *core.Graph, started time.Time) {
	took := time.Since(started)
	p.metrics.ObserveStage(stage, g.VertexCount(), g.EdgeCount(), took)
	p.log.WithFields(logrus.Fields{
		"stage":    stage,
		"nodes":    g.VertexCount(),
		"edges":    g.EdgeCount(),
		"duration": took.String(),
	}).Info("stage finished")
}

// readSeeds loads the configured seed list.
func (p *Pipeline) readSeeds() ([]string, error) {
	f, err := os.Open(p.cfg.Seeds)
	if err != nil {
		return nil, fmt.Errorf("pipeline: seeds: %w", err)
	}
	defer f.Close()

	seeds, err := edgelist.ReadSeeds(f)
	if err != nil {
		return nil, fmt.Errorf("pipeline: seeds %s: %w", p.cfg.Seeds, err)
	}
	p.log.WithFields(logrus.Fields{"seeds": len(seeds), "path": p.cfg.Seeds}).Info("seeds loaded")

	return seeds, nil
}

// save persists g under name and logs the artifact ID.
func (p *Pipeline) save(ctx context.Context, name string, g *core.Graph) error {
	meta, err := p.store.Save(ctx, name, g)
	if err != nil {
		return fmt.Errorf("pipeline: save %s: %w", name, err)
	}
	p.log.WithFields(logrus.Fields{
		"graph": name,
		"id":    meta.ID,
		"nodes": meta.Vertices,
		"edges": meta.Edges,
	}).Info("graph stored")

	return nil
}

// writeDOT renders g into <output_dir>/<name>.dot with seeds highlighted.
func (p *Pipeline) writeDOT(name string, g *core.Graph, seeds []string) (string, error) {
	doc, err := render.DOT(g, render.WithName(name), render.WithSeeds(seeds))
	if err != nil {
		return "", fmt.Errorf("pipeline: %w", err)
	}

	return p.writeOutput(name+".dot", doc)
}

// writeOutput stores data under the output directory and returns its path.
func (p *Pipeline) writeOutput(file string, data []byte) (string, error) {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o750); err != nil {
		return "", fmt.Errorf("pipeline: output dir: %w", err)
	}
	path := filepath.Join(p.cfg.OutputDir, file)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("pipeline: %w", err)
	}
	p.log.WithField("path", path).Debug("output written")

	return path, nil
}

// flushMetrics writes the metrics textfile when one is configured.
func (p *Pipeline) flushMetrics() error {
	if p.cfg.MetricsFile == "" {
		return nil
	}

	return p.metrics.WriteFile(p.cfg.MetricsFile)
}
