package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssembleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assemble",
		Short: "Build, combine and filter the configured edge lists into the master network",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			res, err := pipe.Assemble(cmd.Context())
			if err != nil {
				fatal("assemble", err)
			}
			fmt.Printf("combined: %d nodes, %d edges\n", res.Combined.VertexCount(), res.Combined.EdgeCount())
			fmt.Printf("master:   %d nodes, %d edges (connected: %t)\n",
				res.Master.VertexCount(), res.Master.EdgeCount(), res.Report.Connected)
			fmt.Printf("dot:      %s\n", res.DOTPath)
		},
	}
}
