package filter_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/bfs"
	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/filter"
)

func pathGraph(ids ...string) *core.Graph {
	g := core.NewGraph()
	for i := 1; i < len(ids); i++ {
		_, _ = g.AddEdge(ids[i-1], ids[i], core.Attrs{"pos": float64(i)})
	}

	return g
}

func TestByDistance_PathGraph(t *testing.T) {
	g := pathGraph("A", "B", "C")
	out, err := filter.ByDistance(g, []string{"A"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, out.Vertices())
	assert.Equal(t, 1, out.EdgeCount())
	assert.False(t, out.HasVertex("C"))

	// input untouched
	assert.Equal(t, 3, g.VertexCount())
}

func TestByDistance_Errors(t *testing.T) {
	_, err := filter.ByDistance(nil, []string{"A"}, 1)
	assert.ErrorIs(t, err, filter.ErrGraphNil)

	_, err = filter.ByDistance(pathGraph("A", "B"), []string{"A"}, -1)
	assert.ErrorIs(t, err, filter.ErrParameterRange)
}

func TestByDistance_EdgeCases(t *testing.T) {
	g := pathGraph("A", "B", "C", "D")

	zero, err := filter.ByDistance(g, []string{"B", "D"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, zero.Vertices())
	assert.Equal(t, 0, zero.EdgeCount())

	none, err := filter.ByDistance(g, []string{"X", "Y"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, none.VertexCount())

	mixed, err := filter.ByDistance(g, []string{"X", "D"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, mixed.Vertices())

	e, err := mixed.EdgeBetween("C", "D")
	require.NoError(t, err)
	assert.Equal(t, 3.0, e.Attrs["pos"])
}

// TestByDistance_RetentionProperty checks, on a family of deterministic
// graphs, that seeds are kept, kept vertices are within the threshold of a
// seed, and removed vertices are not.
func TestByDistance_RetentionProperty(t *testing.T) {
	for n := 4; n <= 24; n += 5 {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			_ = g.AddVertex(fmt.Sprintf("p%02d", i))
		}
		for i := 0; i < n; i++ {
			for _, j := range []int{(i*5 + 1) % n, (i*i + 3) % n} {
				if i != j {
					_, _ = g.AddEdge(fmt.Sprintf("p%02d", i), fmt.Sprintf("p%02d", j), nil)
				}
			}
		}
		seeds := []string{"p00", fmt.Sprintf("p%02d", n-1)}

		for threshold := 0; threshold <= 3; threshold++ {
			out, err := filter.ByDistance(g, seeds, threshold)
			require.NoError(t, err)

			for _, s := range seeds {
				assert.True(t, out.HasVertex(s), "seed %s dropped", s)
			}
			for _, v := range g.Vertices() {
				d := nearest(t, g, v, seeds)
				if out.HasVertex(v) {
					assert.GreaterOrEqual(t, d, 0, "kept %s unreachable", v)
					assert.LessOrEqual(t, d, threshold, "kept %s too far", v)
				} else {
					assert.True(t, d < 0 || d > threshold, "removed %s within bound", v)
				}
			}
			// induced: every edge of g between kept vertices survives
			for _, e := range g.Edges() {
				if out.HasVertex(e.From) && out.HasVertex(e.To) {
					assert.True(t, out.HasEdge(e.From, e.To))
				}
			}
		}
	}
}

// nearest computes the seed distance of v with single-source searches.
func nearest(t *testing.T, g *core.Graph, v string, seeds []string) int {
	t.Helper()
	res, err := bfs.BFS(g, v)
	require.NoError(t, err)
	best := -1
	for _, s := range seeds {
		if d, ok := res.Depth[s]; ok && (best < 0 || d < best) {
			best = d
		}
	}

	return best
}

func TestDistances(t *testing.T) {
	g := pathGraph("A", "B", "C", "D", "E")
	d, err := filter.Distances(g, []string{"A", "E"}, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 1, "E": 0}, d)
}

func TestInspect(t *testing.T) {
	g := pathGraph("A", "B", "C", "D", "E")
	out, err := filter.ByDistance(g, []string{"A", "E", "Q", "Q"}, 1)
	require.NoError(t, err)

	r, err := filter.Inspect(g, out, []string{"A", "E", "Q", "Q"})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Before.VertexCount)
	assert.Equal(t, 4, r.After.VertexCount)
	assert.Equal(t, 1, r.Removed())
	assert.Equal(t, 2, r.SeedsPresent)
	assert.Equal(t, []string{"Q"}, r.SeedsMissing)
	assert.Equal(t, 2, r.Components)
	assert.False(t, r.Connected)

	_, err = filter.Inspect(nil, out, nil)
	assert.ErrorIs(t, err, filter.ErrGraphNil)
}
