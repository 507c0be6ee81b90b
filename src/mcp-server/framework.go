// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/bfhl/src/config"
	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the implementation name reported during MCP initialization.
const ServerName = "bfhl"

// ToolHandler defines tool handlers that run operations through the shared
// [dispatch.Dispatcher].
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: The MCP tool call request containing arguments and metadata
//   - d: Dispatcher executing the bfhl operations
//
// Returns:
//   - The tool execution result or an error if the tool could not run at all
//
// Operation failures such as validation errors are reported inside the result
// with IsError set, not as a Go error.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, d *dispatch.Dispatcher) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler defines the signature for prompt handlers.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// ToolDefinition pairs an MCP tool specification with its implementation.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
}

// ServerDependencies holds everything needed to create the MCP server.
// It is filled through [ServerBuilder] and should not be instantiated directly.
type ServerDependencies struct {
	Config       *config.Config
	Embed        templates.EmbedFS
	Version      string
	Dispatcher   *dispatch.Dispatcher
	Tools        []ToolDefinition
	Resources    []server.ServerResource
	Prompts      []server.ServerPrompt
	Instructions string
}

// ServerBuilder constructs the MCP server with a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithDispatcher(d).
//	    WithDefaultTools().
//	    Build()
type ServerBuilder struct {
	deps             ServerDependencies
	defaultResources bool
}

// NewServerBuilder creates a new server builder with empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration exposed by the config resource.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithEmbed sets the filesystem holding the embedded templates.
func (b *ServerBuilder) WithEmbed(fsys templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = fsys
	return b
}

// WithVersion sets the version reported during initialization.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithDispatcher sets the dispatcher every tool runs through. It is required.
func (b *ServerBuilder) WithDispatcher(d *dispatch.Dispatcher) *ServerBuilder {
	b.deps.Dispatcher = d
	return b
}

// WithTools adds tool definitions to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools adds one tool per operation, the raw body tool and the
// resource usage tool.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, createTools()...)
	return b
}

// WithResources adds resources readable by MCP clients.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultResources adds the configuration, version, operations and
// status resources. They are bound to the final dependencies at Build.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	b.defaultResources = true
	return b
}

// WithPrompts adds predefined prompts.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the instructions sent to clients on initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build creates the MCP server with all configured dependencies.
//
// Returns:
//   - The configured MCP server
//   - An error if a required dependency is missing
//
// Tool handlers are bound to the dispatcher here; the config resource falls
// back to built-in defaults when no configuration was given.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}
	if b.deps.Config == nil {
		b.deps.Config = config.Default()
	}
	if b.deps.Embed == nil {
		b.deps.Embed = templates.MagicEmbed
	}

	if b.defaultResources {
		b.deps.Resources = append(b.deps.Resources, createResources(&b.deps)...)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if len(b.deps.Resources) > 0 {
		opts = append(opts, server.WithResourceCapabilities(false, false))
	}
	if len(b.deps.Prompts) > 0 {
		opts = append(opts, server.WithPromptCapabilities(false))
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(ServerName, b.deps.Version, opts...)

	d := b.deps.Dispatcher
	for _, tool := range b.deps.Tools {
		if tool.Handler == nil {
			return nil, fmt.Errorf("tool %q has no handler", tool.Tool.Name)
		}
		s.AddTool(tool.Tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return tool.Handler(ctx, request, d)
		})
	}
	s.AddResources(b.deps.Resources...)
	s.AddPrompts(b.deps.Prompts...)

	return s, nil
}
