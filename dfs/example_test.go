package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/dfs"
)

// ExampleSimplePaths lists the routes between two proteins of a small square.
// Graph structure:
//
//	  A
//	 / \
//	B   D
//	 \ /
//	  C
func ExampleSimplePaths() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"D", "C"}} {
		_, _ = g.AddEdge(e[0], e[1], nil)
	}

	paths, err := dfs.SimplePaths(g, "A", "C", dfs.WithMaxEdges(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// [A B C]
	// [A D C]
}
