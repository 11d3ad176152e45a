package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/internal/pipeline"
)

func newEgoCmd() *cobra.Command {
	var (
		from   string
		radius int
	)
	cmd := &cobra.Command{
		Use:   "ego <center>...",
		Short: "Extract the neighbourhood of one or more proteins",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("radius") {
				cfg.Ego.Radius = radius
			}
			res, err := pipe.Ego(cmd.Context(), from, args)
			if err != nil {
				fatal("ego", err)
			}
			rows := make([][]string, 0, len(res.Graphs))
			seen := make(map[string]bool, len(args))
			for _, c := range args {
				g, ok := res.Graphs[c]
				if !ok || seen[c] {
					continue
				}
				seen[c] = true
				rows = append(rows, []string{c, fmt.Sprint(g.VertexCount()), fmt.Sprint(g.EdgeCount()), res.DOTPaths[c]})
			}
			formatTable([]string{"CENTER", "NODES", "EDGES", "DOT"}, rows)
		},
	}
	cmd.Flags().StringVar(&from, "graph", pipeline.GraphMaster, "Stored graph to query")
	cmd.Flags().IntVar(&radius, "radius", 0, "Hop radius (default from config)")
	return cmd
}
