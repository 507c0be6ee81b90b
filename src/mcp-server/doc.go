// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the bfhl operations over the Model Context
// Protocol ([MCP]) on stdio.
//
// Each operation is a tool (fibonacci, prime, lcm, hcf, ai_query) and the
// bfhl tool accepts a raw request body. All of them run through the same
// [dispatch.Dispatcher] as the HTTP server, so results and error messages
// match POST /bfhl exactly. The server also offers resources describing
// its configuration, version, operations and status, a guided prompt and a
// resource usage tool.
//
// Servers are assembled with [ServerBuilder]; [Run] wires the defaults and
// serves until its context is cancelled.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
