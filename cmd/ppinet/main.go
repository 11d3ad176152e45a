// Command ppinet assembles protein-protein interaction networks from
// edge-list exports and queries them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/internal/config"
	"github.com/katalvlaran/ppinet/internal/logging"
	"github.com/katalvlaran/ppinet/internal/pipeline"
	"github.com/katalvlaran/ppinet/store"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var (
	flagConfig   string
	flagLogLevel string

	cfg    *config.Config
	log    *logrus.Logger
	graphs store.Store
	pipe   *pipeline.Pipeline
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("ppinet version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("ppinet version %s-dev", version)
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "ppinet",
		Short:   "ppinet: protein interaction network assembly",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if graphs != nil {
				_ = graphs.Close()
			}
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "ppinet.yaml", "Path to the pipeline configuration")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (env: "+config.EnvLogLevel+")")

	rootCmd.AddCommand(newAssembleCmd())
	rootCmd.AddCommand(newAugmentCmd())
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newEgoCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSampleCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and opens the logger, store and pipeline.
func setup() {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		fatal("config", err)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	log, err = logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fatal("logging", err)
	}
	graphs, err = store.Open(cfg.Store.Kind, cfg.Store.Path)
	if err != nil {
		fatal("store", err)
	}
	pipe = pipeline.New(cfg, graphs, log, nil)
}

func fatal(msg string, err error) {
	if graphs != nil {
		_ = graphs.Close()
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
