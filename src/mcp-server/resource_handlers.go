// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/bfhl/src/internal/request"
	"github.com/mark3labs/mcp-go/mcp"
)

const redacted = "[REDACTED]"

// jsonContents marshals v as the single text content of uri.
func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// configResourceHandler serves the effective configuration. The API key is
// never exposed; only whether one is set.
func configResourceHandler(deps *ServerDependencies) ResourceHandler {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		cfg := *deps.Config
		if cfg.AI.APIKey != "" {
			cfg.AI.APIKey = redacted
		}
		return jsonContents(URIConfig, cfg)
	}
}

// versionResourceHandler serves server metadata, the registered tool names
// and the operation limits.
func versionResourceHandler(deps *ServerDependencies) ResourceHandler {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tools := make([]string, 0, len(deps.Tools))
		for _, t := range deps.Tools {
			tools = append(tools, t.Tool.Name)
		}

		return jsonContents(URIVersion, map[string]any{
			"name":       ServerName,
			"version":    deps.Version,
			"type":       "MCP Server",
			"tools":      tools,
			"operations": request.Keys,
			"limits": map[string]int{
				"fibonacci":      request.MaxFibonacci,
				"arrayItems":     request.MaxItems,
				"questionLength": request.MaxQuestionLen,
			},
		})
	}
}

// operationsResourceHandler serves the embedded operations reference.
func operationsResourceHandler(deps *ServerDependencies) ResourceHandler {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := deps.Embed.ReadFile("operations.md")
		if err != nil {
			return nil, fmt.Errorf("failed to read operations reference: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      URIOperations,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	}
}

// statusResourceHandler serves the current server status.
func statusResourceHandler(deps *ServerDependencies) ResourceHandler {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return jsonContents(URIStatus, map[string]any{
			"status":         "healthy",
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"version":        deps.Version,
			"official_email": deps.Dispatcher.Email(),
			"ai_configured":  deps.Config.AI.APIKey != "",
		})
	}
}
