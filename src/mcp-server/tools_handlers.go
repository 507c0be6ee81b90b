// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/jsonrpc"
	"github.com/mark3labs/mcp-go/mcp"
)

// operationHandler returns a handler that turns the argument named arg into
// a one-key body under key and dispatches it.
//
// The argument is passed through untouched so the tools and POST /bfhl
// share one validation path and one set of error messages.
func operationHandler(key, arg string) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest, d *dispatch.Dispatcher) (*mcp.CallToolResult, error) {
		body := map[string]any{}
		if v, ok := request.GetArguments()[arg]; ok {
			body[key] = v
		}
		_, env := d.Handle(ctx, body)
		return envelopeResult(env)
	}
}

// bfhlArgs are the arguments of the bfhl tool.
type bfhlArgs struct {
	Body json.RawMessage `json:"body"`
}

// handleBFHL dispatches the "body" argument as a complete request body. The
// body is decoded again from its JSON text, exactly as POST /bfhl does.
func handleBFHL(ctx context.Context, request mcp.CallToolRequest, d *dispatch.Dispatcher) (*mcp.CallToolResult, error) {
	var args bfhlArgs
	if err := jsonrpc.UnmarshalFromMap(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.Body == nil {
		return mcp.NewToolResultError("body parameter is required"), nil
	}
	_, env := d.HandleRaw(ctx, args.Body)
	return envelopeResult(env)
}

// envelopeResult renders env as structured content with a JSON text
// fallback. Failure envelopes are flagged with IsError.
func envelopeResult(env dispatch.Envelope) (*mcp.CallToolResult, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(env); err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	// The encoder appends a newline.
	text := buf.String()
	text = text[:len(text)-1]

	result := mcp.NewToolResultStructured(env, text)
	result.IsError = !env.IsSuccess
	return result, nil
}
