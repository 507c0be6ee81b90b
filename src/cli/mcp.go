// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/H0llyW00dzZ/bfhl/src/logger"
	mcpserver "github.com/H0llyW00dzZ/bfhl/src/mcp-server"
	"github.com/spf13/cobra"
)

func (a *app) newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the operations as MCP tools over stdio",
		Long: `Serve the operations as Model Context Protocol tools over stdin and stdout.
Logs go to stderr since stdout carries the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			log := logger.NewJSONLogger(a.streams.Err, false)
			return mcpserver.Run(cmd.Context(), mcpserver.ServerConfig{
				Version:    a.version,
				Config:     cfg,
				Dispatcher: newDispatcher(cfg, log),
				Logger:     log,
				In:         a.streams.In,
				Out:        a.streams.Out,
			})
		},
	}
}
