package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/paths"
)

func build(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], core.Attrs{"pair": p[0] + p[1]})
		require.NoError(t, err)
	}

	return g
}

func TestExtract_TwoRoutes(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"}, [2]string{"D", "C"})

	res, err := paths.Extract(g, "A", "C", 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"A", "D", "C"}}, res.Paths)
	assert.Equal(t, []string{"B", "D"}, res.Internal)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Subgraph.Vertices())
	assert.Equal(t, 4, res.Subgraph.EdgeCount())
	for _, e := range g.Edges() {
		got, err := res.Subgraph.EdgeBetween(e.From, e.To)
		require.NoError(t, err)
		assert.Equal(t, e.Attrs, got.Attrs)
	}
}

func TestExtract_Disconnected(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"C", "D"})
	res, err := paths.Extract(g, "A", "D", 5)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, paths.ErrPathNotFound)
}

func TestExtract_Preconditions(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	for _, n := range []int{-1, 0, 2, 10, 11} {
		_, err := paths.Extract(g, "A", "B", n)
		assert.ErrorIs(t, err, paths.ErrParameterRange, "maxNodes=%d", n)
	}
	_, err := paths.Extract(g, "A", "A", 5)
	assert.ErrorIs(t, err, paths.ErrParameterRange)

	_, err = paths.Extract(g, "A", "Z", 5)
	assert.ErrorIs(t, err, paths.ErrNodeNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = paths.Extract(nil, "A", "B", 5)
	assert.ErrorIs(t, err, paths.ErrGraphNil)
}

func TestExtract_TooLong(t *testing.T) {
	// A–1–2–3–B needs 4 edges
	g := build(t, [2]string{"A", "1"}, [2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "B"})
	res, err := paths.Extract(g, "A", "B", 3)
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Empty(t, res.Internal)
	assert.Equal(t, []string{"A", "B"}, res.Subgraph.Vertices())
	assert.Equal(t, 0, res.Subgraph.EdgeCount())

	res, err = paths.Extract(g, "A", "B", 4)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "1", "2", "3", "B"}}, res.Paths)
}

// TestExtract_PathProperties checks endpoints, simplicity and length bound
// on a dense graph.
func TestExtract_PathProperties(t *testing.T) {
	ids := []string{"s", "a", "b", "c", "d", "e", "t"}
	g := core.NewGraph()
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if (i+j)%3 != 0 {
				_, _ = g.AddEdge(ids[i], ids[j], nil)
			}
		}
	}
	for maxNodes := 3; maxNodes <= 6; maxNodes++ {
		res, err := paths.Extract(g, "s", "t", maxNodes)
		require.NoError(t, err)
		require.NotEmpty(t, res.Paths)
		for _, p := range res.Paths {
			assert.Equal(t, "s", p[0])
			assert.Equal(t, "t", p[len(p)-1])
			assert.LessOrEqual(t, len(p), maxNodes+1)
			seen := map[string]bool{}
			for i, v := range p {
				assert.False(t, seen[v])
				seen[v] = true
				if i > 0 {
					assert.True(t, g.HasEdge(p[i-1], v))
				}
			}
		}
		for _, v := range res.Internal {
			assert.True(t, res.Subgraph.HasVertex(v))
		}
	}
}

func TestEndpointsFromFilename(t *testing.T) {
	s, tg, err := paths.EndpointsFromFilename("/data/queries/JAK2_STAT3.tsv")
	require.NoError(t, err)
	assert.Equal(t, "JAK2", s)
	assert.Equal(t, "STAT3", tg)

	for _, bad := range []string{"JAK2.tsv", "A_B_C.tsv", "_B.tsv", "A_.tsv"} {
		_, _, err = paths.EndpointsFromFilename(bad)
		assert.ErrorIs(t, err, paths.ErrFilename, bad)
	}
}
