// Package metrics defines Prometheus metrics for pipeline runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one pipeline run on a private registry.
type Metrics struct {
	Registry      *prometheus.Registry
	StageNodes    *prometheus.GaugeVec
	StageEdges    *prometheus.GaugeVec
	StageDuration *prometheus.HistogramVec
	RowsTotal     *prometheus.CounterVec
}

// New creates and registers the pipeline collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		StageNodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ppinet_stage_nodes",
				Help: "Vertex count of the graph produced by a stage",
			},
			[]string{"stage"},
		),
		StageEdges: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ppinet_stage_edges",
				Help: "Edge count of the graph produced by a stage",
			},
			[]string{"stage"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ppinet_stage_duration_seconds",
				Help:    "Stage duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		RowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ppinet_rows_total",
				Help: "Edge-list rows read per source",
			},
			[]string{"source"},
		),
	}
	m.Registry.MustRegister(m.StageNodes, m.StageEdges, m.StageDuration, m.RowsTotal)

	return m
}

// ObserveStage records the size of a stage result and how long it took.
func (m *Metrics) ObserveStage(stage string, nodes, edges int, took time.Duration) {
	m.StageNodes.WithLabelValues(stage).Set(float64(nodes))
	m.StageEdges.WithLabelValues(stage).Set(float64(edges))
	m.StageDuration.WithLabelValues(stage).Observe(took.Seconds())
}

// AddRows counts rows read from source.
func (m *Metrics) AddRows(source string, n int) {
	m.RowsTotal.WithLabelValues(source).Add(float64(n))
}

// WriteFile exports the registry in the text exposition format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}
