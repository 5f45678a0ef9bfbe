package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	kgagent "github.com/LaurenzPoll/knowledge-graph-agent"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/config"
	kglogger "github.com/LaurenzPoll/knowledge-graph-agent/pkg/logger"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger

	// errorSink persists error records when telemetry is configured
	errorSink *telemetry.ParquetHandler

	rootCmd = &cobra.Command{
		Use:   "kgagent",
		Short: "kgagent: question answering over a knowledge graph",
		Long: `kgagent builds a knowledge graph of (subject, predicate, object) facts
and answers questions grounded only in those facts.

Facts come from a triples file, the built-in demo set, or text passages run
through an extraction model. Questions are narrowed to the best matching
entity, the closest facts are ranked by embedding similarity, and the answer
is generated from those facts alone.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			teardown()
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kgagent.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().String("store-driver", "badger", "fact store driver (badger, neo4j, postgres, dolt, memory)")
	rootCmd.PersistentFlags().String("group-id", "default", "fact set to read and write")

	// Bind flags to viper
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("store.driver", rootCmd.PersistentFlags().Lookup("store-driver"))
	viper.BindPFlag("store.group_id", rootCmd.PersistentFlags().Lookup("group-id"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".kgagent" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kgagent")
	}

	viper.SetEnvPrefix("KGAGENT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup loads configuration and installs the process logger.
func setup(stderr io.Writer) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, errorSink = newLogger(cfg, stderr)
	slog.SetDefault(logger)
	return nil
}

func teardown() {
	if errorSink != nil {
		if err := errorSink.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to flush error telemetry: %v\n", err)
		}
		errorSink = nil
	}
}

// newLogger builds the console handler for cfg.Log and, when a telemetry
// path is configured, tees error records into Parquet files there.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, *telemetry.ParquetHandler) {
	opts := &slog.HandlerOptions{Level: kglogger.ParseLevel(cfg.Log.Level)}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = kglogger.NewColorHandler(w, opts)
	}

	if cfg.Telemetry.ParquetPath == "" {
		return slog.New(handler), nil
	}
	parquetHandler, err := telemetry.NewParquetHandler(handler, cfg.Telemetry.ParquetPath, telemetry.DefaultBatchSize)
	if err != nil {
		fmt.Fprintf(w, "Warning: failed to initialize error tracking: %v\n", err)
		return slog.New(handler), nil
	}
	return slog.New(parquetHandler), parquetHandler
}

// openClient wires the agent from the loaded configuration.
func openClient(ctx context.Context) (*kgagent.Client, error) {
	client, err := kgagent.NewClientFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize agent: %w", err)
	}
	return client, nil
}
