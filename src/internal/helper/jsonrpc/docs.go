// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helpers for [JSON-RPC 2.0] params as received by
// the MCP tool handlers.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
