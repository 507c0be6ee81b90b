// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/H0llyW00dzZ/bfhl/src/httpserver"
	"github.com/H0llyW00dzZ/bfhl/src/logger"
	"github.com/spf13/cobra"
)

func (a *app) newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log := logger.NewJSONLogger(a.streams.Out, false)
			srv := httpserver.New(cfg, newDispatcher(cfg, log), log)
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config file and $PORT")
	return cmd
}
