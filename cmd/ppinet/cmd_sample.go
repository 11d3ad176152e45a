package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/internal/pipeline"
)

func newSampleCmd() *cobra.Command {
	params := pipeline.SampleParams{Leaves: 20, MinRadius: 1, MaxRadius: 5}
	cmd := &cobra.Command{
		Use:   "sample <center>",
		Short: "Store a random star network around one protein",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			params.Center = args[0]
			res, err := pipe.Sample(cmd.Context(), params)
			if err != nil {
				fatal("sample", err)
			}
			fmt.Printf("%s: %d nodes, %d edges, %s\n",
				pipeline.GraphSample, res.Graph.VertexCount(), res.Graph.EdgeCount(), res.DOTPath)
		},
	}
	cmd.Flags().IntVarP(&params.Leaves, "nodes", "n", params.Leaves, "Number of random leaves")
	cmd.Flags().Float64Var(&params.MinRadius, "k1", params.MinRadius, "Lower bound of the spoke radius")
	cmd.Flags().Float64Var(&params.MaxRadius, "k2", params.MaxRadius, "Upper bound of the spoke radius")
	cmd.Flags().Int64Var(&params.Seed, "seed", 1, "Random seed")
	return cmd
}
