// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/bfhl/src/config"
	"github.com/H0llyW00dzZ/bfhl/src/internal/ai"
	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/bfhl/src/logger"
	"github.com/spf13/cobra"
)

// Streams holds the standard streams commands read from and write to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// app carries what every subcommand shares.
type app struct {
	version    string
	log        logger.Logger
	streams    Streams
	configPath string
}

// Execute runs the bfhl command line with the process arguments.
//
// Parameters:
//   - ctx: Cancelled on SIGINT/SIGTERM; servers shut down gracefully
//   - version: Version printed by --version and reported by the servers
//   - log: Logger for command-line messages
//
// Returns:
//   - error: The first error of the executed command
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log, StdStreams()).ExecuteContext(ctx)
}

// NewRootCommand builds the bfhl command tree. Running it without a
// subcommand starts the HTTP server.
func NewRootCommand(version string, log logger.Logger, streams Streams) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	a := &app{version: version, log: log, streams: streams}

	rootCmd := &cobra.Command{
		Use:   "bfhl",
		Short: "BFHL computation service",
		Long: `bfhl answers single-operation requests: Fibonacci sequences, prime filtering,
LCM, HCF and one-word AI answers.

Without a subcommand it serves the HTTP API (POST /bfhl, GET /health).`,
		Example: fmt.Sprintf(`  %[1]s --addr :8080
  %[1]s --config bfhl.yaml serve
  %[1]s mcp`, posix.GetExecutableName()),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"config file (JSON or YAML); defaults to $"+config.EnvConfigFile)

	serveCmd := a.newServeCommand()
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd, a.newMCPCommand(), a.newComputeCommand())
	return rootCmd
}

// loadConfig resolves the configuration from the --config flag, the
// environment and the built-in defaults.
func (a *app) loadConfig() (*config.Config, error) {
	return config.Load(a.configPath)
}

// newDispatcher wires a dispatcher backed by Gemini. Failures are logged to log.
func newDispatcher(cfg *config.Config, log logger.Logger) *dispatch.Dispatcher {
	asker := ai.NewGemini(ai.Config{
		APIKey:       cfg.AI.APIKey,
		Model:        cfg.AI.Model,
		BaseURL:      cfg.AI.BaseURL,
		FallbackWord: cfg.AI.FallbackWord,
		Timeout:      cfg.AITimeout(),
	})
	return dispatch.New(cfg.OfficialEmail, asker, log)
}
