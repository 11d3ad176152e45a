package edgelist_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ppinet/edgelist"
)

// ExampleBuild reads a STRING export and builds its interaction graph.
func ExampleBuild() {
	const tsv = "#node1\tnode2\tcombined_score\n" +
		"DDX58\tTRIM25\t0.999\n" +
		"TRIM25\tZC3HAV1\t0.871\n"

	tbl, err := edgelist.ReadTable(strings.NewReader(tsv), '\t')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := edgelist.Build(tbl, edgelist.StringDB)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, e.To, e.Attrs["combined_score"])
	}
	// Output:
	// e1 DDX58 TRIM25 0.999
	// e2 TRIM25 ZC3HAV1 0.871
}
