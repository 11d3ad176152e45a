package ego_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/bfs"
	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/ego"
)

func star() *core.Graph {
	g := core.NewGraph()
	for _, leaf := range []string{"B", "C", "D"} {
		_, _ = g.AddEdge("A", leaf, nil)
	}

	return g
}

func TestGraph_Star(t *testing.T) {
	sub, err := ego.Graph(star(), "A", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, sub.Vertices())
	assert.Equal(t, 3, sub.EdgeCount())
	assert.False(t, sub.HasEdge("B", "C"))
}

func TestGraph_RadiusZero(t *testing.T) {
	sub, err := ego.Graph(star(), "B", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, sub.Vertices())
	assert.Equal(t, 0, sub.EdgeCount())
}

func TestGraph_Errors(t *testing.T) {
	_, err := ego.Graph(star(), "Z", 1)
	assert.ErrorIs(t, err, ego.ErrNodeNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = ego.Graph(star(), "A", -1)
	assert.ErrorIs(t, err, ego.ErrParameterRange)

	_, err = ego.Graph(nil, "A", 1)
	assert.ErrorIs(t, err, ego.ErrGraphNil)
}

// TestGraph_NodeSet checks that the neighbourhood is exactly the ball of
// the given radius with induced edges.
func TestGraph_NodeSet(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%02d", i), fmt.Sprintf("v%02d", (i+1)%12), nil)
	}
	_, _ = g.AddEdge("v00", "v06", nil)

	full, err := bfs.BFS(g, "v00")
	require.NoError(t, err)
	for r := 0; r <= 4; r++ {
		sub, err := ego.Graph(g, "v00", r)
		require.NoError(t, err)
		for _, v := range g.Vertices() {
			assert.Equal(t, full.Depth[v] <= r, sub.HasVertex(v), "radius %d vertex %s", r, v)
		}
		for _, e := range g.Edges() {
			in := sub.HasVertex(e.From) && sub.HasVertex(e.To)
			assert.Equal(t, in, sub.HasEdge(e.From, e.To))
		}
	}
}

func TestBatch(t *testing.T) {
	g := star()
	_, _ = g.AddEdge("D", "E", nil)

	out, err := ego.Batch(context.Background(), g, []string{"A", "E", "A", "C"}, 1, 2)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"A", "B", "C", "D"}, out["A"].Vertices())
	assert.Equal(t, []string{"D", "E"}, out["E"].Vertices())
	assert.Equal(t, []string{"A", "C"}, out["C"].Vertices())

	_, err = ego.Batch(context.Background(), g, []string{"A", "missing"}, 1, 0)
	assert.ErrorIs(t, err, ego.ErrNodeNotFound)

	_, err = ego.Batch(context.Background(), g, []string{"A"}, -2, 1)
	assert.ErrorIs(t, err, ego.ErrParameterRange)
}

func TestBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ego.Batch(ctx, star(), []string{"A", "B"}, 2, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
