package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graphs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names, err := graphs.List(cmd.Context())
			if err != nil {
				fatal("list", err)
			}
			rows := make([][]string, 0, len(names))
			for _, n := range names {
				g, err := graphs.Load(cmd.Context(), n)
				if err != nil {
					fatal("list", err)
				}
				rows = append(rows, []string{n, fmt.Sprint(g.VertexCount()), fmt.Sprint(g.EdgeCount())})
			}
			formatTable([]string{"NAME", "NODES", "EDGES"}, rows)
		},
	}
}
