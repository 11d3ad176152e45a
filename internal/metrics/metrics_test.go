package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/internal/metrics"
)

func TestObserveStage(t *testing.T) {
	m := metrics.New()
	m.ObserveStage("filter", 12, 30, 150*time.Millisecond)
	m.AddRows("string", 100)
	m.AddRows("string", 20)

	assert.Equal(t, 12.0, testutil.ToFloat64(m.StageNodes.WithLabelValues("filter")))
	assert.Equal(t, 30.0, testutil.ToFloat64(m.StageEdges.WithLabelValues("filter")))
	assert.Equal(t, 120.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues("string")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.StageDuration))
}

func TestWriteFile(t *testing.T) {
	m := metrics.New()
	m.ObserveStage("combine", 5, 4, time.Second)
	path := filepath.Join(t.TempDir(), "ppinet.prom")
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ppinet_stage_nodes{stage="combine"} 5`)
	assert.Contains(t, string(data), "ppinet_stage_duration_seconds_bucket")
}
