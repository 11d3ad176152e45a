package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/dfs"
)

// BenchmarkSimplePaths_Grid measures bounded enumeration on a 6x6 grid,
// where the number of short corner-to-corner paths grows quickly.
func BenchmarkSimplePaths_Grid(b *testing.B) {
	const n = 6
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("r%dc%d", r, c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_, _ = g.AddEdge(id(r, c), id(r, c+1), nil)
			}
			if r+1 < n {
				_, _ = g.AddEdge(id(r, c), id(r+1, c), nil)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.SimplePaths(g, id(0, 0), id(n-1, n-1), dfs.WithMaxEdges(12))
	}
}
