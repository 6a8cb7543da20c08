package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/hexrune"
	"github.com/aretw0/hexrune/internal/cli"
	"github.com/aretw0/hexrune/internal/config"
	"github.com/aretw0/hexrune/internal/logging"
	"github.com/aretw0/hexrune/pkg/metrics"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "hexrune",
	Short:         "HexRune is a node-graph visual scripting runtime",
	Long:          `HexRune authors, stores, inspects and plays node-graph scripts driven by host lifecycle events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the hexrune.yaml configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every node entry and exit")
}

// env is what every command needs: configuration, a logger and an engine
// over the configured store.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	engine *hexrune.Engine
	close  func() error
}

// setup loads configuration from the persistent flags and opens the engine.
// collector may be nil.
func setup(cmd *cobra.Command, collector *metrics.Collector) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	levelName := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		levelName, _ = cmd.Flags().GetString("log-level")
	}
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		levelName = "debug"
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	eng, closeStore, err := cli.CreateEngine(cli.EngineOptions{
		Config:  cfg,
		Logger:  logger,
		Debug:   debug,
		Metrics: collector,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("engine ready", "store", cfg.Store.Backend)
	return &env{cfg: cfg, logger: logger, engine: eng, close: closeStore}, nil
}
