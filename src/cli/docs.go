// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the Cobra-based command line of bfhl.
//
// The root command serves the HTTP API; mcp serves the same operations as
// MCP tools over stdio; compute runs a single request body and prints the
// envelope as JSON or as a markdown table. All commands share the --config
// flag and the configuration layering of the config package.
package cli
