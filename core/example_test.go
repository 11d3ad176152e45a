package core_test

import (
	"fmt"

	"github.com/katalvlaran/ppinet/core"
)

// ExampleInducedSubgraph shows that views never touch their source graph.
func ExampleInducedSubgraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("ZC3HAV1", "TRIM25", core.Attrs{"score": 0.92})
	_, _ = g.AddEdge("TRIM25", "DDX58", core.Attrs{"score": 0.99})
	_, _ = g.AddEdge("DDX58", "EXOSC5", core.Attrs{"score": 0.41})

	sub := core.InducedOn(g, []string{"ZC3HAV1", "TRIM25", "DDX58"})
	fmt.Println(sub.Vertices(), sub.EdgeCount())
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output:
	// [DDX58 TRIM25 ZC3HAV1] 2
	// 4 3
}
