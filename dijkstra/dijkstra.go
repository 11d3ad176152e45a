package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/ppinet/core"
)

// Dijkstra settles every vertex reachable from source within MaxDistance.
// Only settled vertices appear in Result.Dist.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:    g,
		cfg:  cfg,
		best: map[string]float64{source: 0},
		res: &Result{
			Source: source,
			Dist:   make(map[string]float64, g.VertexCount()),
			Prev:   make(map[string]string, g.VertexCount()),
		},
	}
	heap.Push(&r.pq, &nodeItem{id: source})
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// Path returns the least-cost route from source to target and its cost.
func Path(g *core.Graph, source, target string, opts ...Option) ([]string, float64, error) {
	if g != nil && !g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	res, err := Dijkstra(g, source, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(target)
	if err != nil {
		return nil, 0, fmt.Errorf("%w from %q to %q", err, source, target)
	}

	return path, res.Dist[target], nil
}

type runner struct {
	g    *core.Graph
	cfg  Options
	best map[string]float64 // tentative distances
	pq   nodePQ
	res  *Result
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if _, done := r.res.Dist[item.id]; done {
			continue
		}
		if item.dist > r.cfg.MaxDistance {
			break
		}
		r.res.Dist[item.id] = item.dist
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u string, du float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		v := e.Other(u)
		if _, done := r.res.Dist[v]; done {
			continue
		}
		w, ok := r.cfg.Cost(e.Attrs)
		if !ok {
			continue
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %s-%s cost=%g", ErrNegativeWeight, e.From, e.To, w)
		}
		nd := du + w
		if old, seen := r.best[v]; seen && nd >= old {
			continue
		}
		r.best[v] = nd
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry; stale duplicates are skipped on pop.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap on dist, ties broken by id for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
