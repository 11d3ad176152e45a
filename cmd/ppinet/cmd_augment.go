package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAugmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "augment",
		Short: "Add paralog and ortholog edges to the master network and refilter",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			res, err := pipe.Augment(cmd.Context())
			if err != nil {
				fatal("augment", err)
			}
			fmt.Printf("augmented: %d nodes, %d edges (connected: %t)\n",
				res.Augmented.VertexCount(), res.Augmented.EdgeCount(), res.Report.Connected)
			fmt.Printf("dot:       %s\n", res.DOTPath)
		},
	}
}
