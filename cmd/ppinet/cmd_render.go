package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/edgelist"
	"github.com/katalvlaran/ppinet/render"
)

func newRenderCmd() *cobra.Command {
	var (
		out     string
		noAttrs bool
	)
	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Write a stored graph as Graphviz DOT, seeds highlighted",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			g, err := graphs.Load(cmd.Context(), args[0])
			if err != nil {
				fatal("render", err)
			}
			opts := []render.Option{render.WithName(args[0])}
			if f, err := os.Open(cfg.Seeds); err == nil {
				seeds, rerr := edgelist.ReadSeeds(f)
				f.Close()
				if rerr != nil {
					fatal("render", rerr)
				}
				opts = append(opts, render.WithSeeds(seeds))
			}
			if noAttrs {
				opts = append(opts, render.WithoutEdgeAttrs())
			}
			doc, err := render.DOT(g, opts...)
			if err != nil {
				fatal("render", err)
			}
			if out == "" || out == "-" {
				_, err = os.Stdout.Write(doc)
			} else {
				err = os.WriteFile(out, doc, 0o640)
			}
			if err != nil {
				fatal("render", err)
			}
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().BoolVar(&noAttrs, "no-attrs", false, "Omit edge attributes")
	return cmd
}
