// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/bfhl/src/cli"
	"github.com/H0llyW00dzZ/bfhl/src/logger"
	verpkg "github.com/H0llyW00dzZ/bfhl/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()
	// stdout carries command output and, in mcp mode, the protocol.
	log.SetOutput(os.Stderr)

	// Servers shut down gracefully once the context is cancelled.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version, log); err != nil {
		log.Printf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}
