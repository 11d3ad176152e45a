package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/dijkstra"
	"github.com/katalvlaran/ppinet/edgelist"
	"github.com/katalvlaran/ppinet/ego"
	"github.com/katalvlaran/ppinet/paths"
)

// PathsResult is the outcome of a path query.
type PathsResult struct {
	Name      string
	Extracted *paths.Result
	DOTPath   string
	ListPath  string

	// Shortest is one minimum-hop path among Extracted.Paths, nil when
	// every connecting path exceeds the length bound.
	Shortest []string
	Hops     int
}

// Paths loads the stored graph called from and extracts the bounded paths
// between source and target. The subgraph is stored as SOURCE_TARGET and
// the path list is written to the output directory.
func (p *Pipeline) Paths(ctx context.Context, from, source, target string) (*PathsResult, error) {
	g, err := p.store.Load(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return p.extract(ctx, g, source, target)
}

// PathsFromFile runs a path query against a single STRING export named
// SOURCE_TARGET.tsv, taking both endpoints from the file name.
func (p *Pipeline) PathsFromFile(ctx context.Context, file string) (*PathsResult, error) {
	source, target, err := paths.EndpointsFromFilename(file)
	if err != nil {
		return nil, err
	}
	tbl, err := readTable(file, '\t')
	if err != nil {
		return nil, err
	}
	g, err := edgelist.Build(tbl, edgelist.StringDB)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", file, err)
	}
	p.metrics.AddRows("query", tbl.Len())

	return p.extract(ctx, g, source, target)
}

func (p *Pipeline) extract(ctx context.Context, g *core.Graph, source, target string) (*PathsResult, error) {
	started := time.Now()
	res, err := paths.Extract(g, source, target, p.cfg.Paths.MaxNodes)
	if err != nil {
		return nil, err
	}
	p.observe("paths", res.Subgraph, started)
	p.log.WithFields(logrus.Fields{
		"source":    source,
		"target":    target,
		"max_nodes": p.cfg.Paths.MaxNodes,
		"paths":     len(res.Paths),
		"internal":  len(res.Internal),
	}).Info("paths extracted")

	name := source + "_" + target
	out := &PathsResult{Name: name, Extracted: res}
	if len(res.Paths) > 0 {
		if out.Shortest, _, err = dijkstra.Path(res.Subgraph, source, target); err != nil {
			return nil, err
		}
		out.Hops = len(out.Shortest) - 1
		p.log.WithFields(logrus.Fields{"path": strings.Join(out.Shortest, ">"), "hops": out.Hops}).Info("shortest path")
	}
	if out.DOTPath, err = p.writeDOT(name, res.Subgraph, []string{source, target}); err != nil {
		return nil, err
	}
	if out.ListPath, err = p.writeOutput(name+".paths.tsv", formatPaths(res.Paths)); err != nil {
		return nil, err
	}
	if err = p.flushMetrics(); err != nil {
		return nil, err
	}
	if err = p.save(ctx, name, res.Subgraph); err != nil {
		return nil, err
	}

	return out, nil
}

// formatPaths renders one tab-separated path per line.
func formatPaths(ps [][]string) []byte {
	var b strings.Builder
	for _, path := range ps {
		b.WriteString(strings.Join(path, "\t"))
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

// EgoResult is the outcome of a neighbourhood query.
type EgoResult struct {
	Graphs   map[string]*core.Graph
	DOTPaths map[string]string
}

// Ego loads the stored graph called from and extracts the neighbourhood of
// every center with the configured radius and worker count. Each
// neighbourhood is stored as ego_<center>.
func (p *Pipeline) Ego(ctx context.Context, from string, centers []string) (*EgoResult, error) {
	g, err := p.store.Load(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	started := time.Now()
	subs, err := ego.Batch(ctx, g, centers, p.cfg.Ego.Radius, p.cfg.Ego.Workers)
	if err != nil {
		return nil, err
	}

	out := &EgoResult{Graphs: subs, DOTPaths: make(map[string]string, len(subs))}
	var order []string
	for _, c := range centers {
		sub, ok := subs[c]
		if !ok || out.DOTPaths[c] != "" {
			continue
		}
		order = append(order, c)
		p.observe("ego", sub, started)
		if out.DOTPaths[c], err = p.writeDOT("ego_"+c, sub, []string{c}); err != nil {
			return nil, err
		}
	}
	if err = p.flushMetrics(); err != nil {
		return nil, err
	}
	for _, c := range order {
		if err = p.save(ctx, "ego_"+c, subs[c]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
