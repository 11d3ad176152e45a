package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/internal/pipeline"
)

func newPathsCmd() *cobra.Command {
	var (
		from     string
		file     string
		maxNodes int
	)
	cmd := &cobra.Command{
		Use:   "paths [<source> <target>]",
		Short: "Extract bounded simple paths between two proteins",
		Long: "Extract every simple path between two proteins of a stored graph, or of a\n" +
			"single STRING export named SOURCE_TARGET.tsv given with --file.",
		Args: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("max-nodes") {
				cfg.Paths.MaxNodes = maxNodes
			}
			var (
				res *pipeline.PathsResult
				err error
			)
			if file != "" {
				res, err = pipe.PathsFromFile(cmd.Context(), file)
			} else {
				res, err = pipe.Paths(cmd.Context(), from, args[0], args[1])
			}
			if err != nil {
				fatal("paths", err)
			}
			for _, p := range res.Extracted.Paths {
				fmt.Println(strings.Join(p, " -> "))
			}
			fmt.Printf("%d paths, %d internal nodes, stored as %s\n",
				len(res.Extracted.Paths), len(res.Extracted.Internal), res.Name)
			if res.Shortest != nil {
				fmt.Printf("shortest: %s (%d hops)\n", strings.Join(res.Shortest, " -> "), res.Hops)
			}
		},
	}
	cmd.Flags().StringVar(&from, "graph", pipeline.GraphMaster, "Stored graph to query")
	cmd.Flags().StringVar(&file, "file", "", "Query a SOURCE_TARGET.tsv export instead of a stored graph")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "Path length bound, 2 < n < 10 (default from config)")
	return cmd
}
