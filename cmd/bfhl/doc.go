// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// bfhl serves single-operation computations over HTTP and MCP.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/bfhl/cmd/bfhl@latest
//
// # Usage
//
//	bfhl [serve] [--addr ADDR] [--config FILE]
//	bfhl mcp [--config FILE]
//	bfhl compute [JSON] [--file FILE] [--table]
//
// # Environment
//
//	BFHL_CONFIG_FILE  JSON or YAML config file, when --config is not given
//	OFFICIAL_EMAIL    Email reported in every response
//	GEMINI_API_KEY    Enables AI questions
//	PORT              Listen port, e.g. 3000
//
// # Examples
//
// Serve the HTTP API on port 8080:
//
//	PORT=8080 bfhl
//
// Query it:
//
//	curl -s localhost:8080/bfhl -H 'Content-Type: application/json' \
//	  -d '{"fibonacci": 7}'
//
// Run a request without a server:
//
//	bfhl compute '{"lcm": [12, 18, 24]}'
package main
