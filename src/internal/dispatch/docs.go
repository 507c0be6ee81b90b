// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dispatch runs validated operations and wraps their outcome in the
// response envelope shared by every transport (HTTP, MCP and the CLI).
//
// Every outcome is reduced to a status code and an [Envelope]; failures carry
// an [Error] whose [Kind] decides the status.
package dispatch
