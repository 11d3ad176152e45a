package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/ppinet/combine"
	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/edgelist"
	"github.com/katalvlaran/ppinet/filter"
)

// AugmentResult is the outcome of Augment.
type AugmentResult struct {
	Paralogs  *core.Graph
	Orthologs *core.Graph
	Augmented *core.Graph
	Report    filter.Report
	DOTPath   string
}

// Augment enriches the stored master network with paralog and ortholog
// edges, then filters the union again with the augment threshold. Master
// attributes win on shared pairs since the master graph is combined first.
func (p *Pipeline) Augment(ctx context.Context) (*AugmentResult, error) {
	if p.cfg.Augment.Paralogs == "" && p.cfg.Augment.Orthologs == "" {
		return nil, fmt.Errorf("%w: augment needs paralogs or orthologs", ErrNoInput)
	}
	seeds, err := p.readSeeds()
	if err != nil {
		return nil, err
	}
	master, err := p.store.Load(ctx, GraphMaster)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	res := &AugmentResult{}
	graphs := []*core.Graph{master}
	if path := p.cfg.Augment.Paralogs; path != "" {
		if res.Paralogs, err = p.paralogs(path); err != nil {
			return nil, err
		}
		graphs = append(graphs, res.Paralogs)
	}
	if path := p.cfg.Augment.Orthologs; path != "" {
		if res.Orthologs, err = p.orthologs(path, master); err != nil {
			return nil, err
		}
		graphs = append(graphs, res.Orthologs)
	}

	started := time.Now()
	union, err := combine.Combine(graphs)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	p.observe("augment", union, started)

	res.Augmented, res.Report, err = p.filter(union, seeds, p.cfg.AugmentThreshold)
	if err != nil {
		return nil, err
	}
	if res.DOTPath, err = p.writeDOT(GraphAugmented, res.Augmented, seeds); err != nil {
		return nil, err
	}
	if err = p.flushMetrics(); err != nil {
		return nil, err
	}
	if err = p.save(ctx, GraphAugmented, res.Augmented); err != nil {
		return nil, err
	}

	return res, nil
}

// paralogs builds the BioMart paralog graph; genes without a paralog are
// skipped.
func (p *Pipeline) paralogs(path string) (*core.Graph, error) {
	started := time.Now()
	tbl, err := readTable(path, '\t')
	if err != nil {
		return nil, err
	}
	p.metrics.AddRows("paralogs", tbl.Len())
	g, err := edgelist.Build(tbl, edgelist.Paralogs, edgelist.WithSkipIncomplete())
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", path, err)
	}
	p.observe("paralogs", g, started)

	return g, nil
}

// orthologs builds the ortholog graph of master genes in the configured
// species.
func (p *Pipeline) orthologs(path string, master *core.Graph) (*core.Graph, error) {
	started := time.Now()
	f, err := os.Open(p.cfg.Augment.TaxIDs)
	if err != nil {
		return nil, fmt.Errorf("pipeline: tax ids: %w", err)
	}
	taxIDs, err := edgelist.ReadTaxIDs(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", p.cfg.Augment.TaxIDs, err)
	}

	tbl, err := readTable(path, '\t')
	if err != nil {
		return nil, err
	}
	p.metrics.AddRows("orthologs", tbl.Len())
	selected, err := edgelist.SelectOrthologs(tbl, taxIDs, master.VertexSet())
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", path, err)
	}
	if selected.Len() == 0 {
		p.log.WithField("path", path).Warn("no orthologs match the master network")
		return core.NewGraph(), nil
	}
	g, err := edgelist.Build(selected, edgelist.Orthologs)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", path, err)
	}
	p.observe("orthologs", g, started)

	return g, nil
}

func readTable(path string, delim rune) (edgelist.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return edgelist.Table{}, fmt.Errorf("pipeline: %w", err)
	}
	defer f.Close()

	tbl, err := edgelist.ReadTable(f, delim)
	if err != nil {
		return edgelist.Table{}, fmt.Errorf("pipeline: %s: %w", path, err)
	}

	return tbl, nil
}
