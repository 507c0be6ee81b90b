// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/H0llyW00dzZ/bfhl/src/internal/request"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	ToolFibonacci     = "fibonacci"
	ToolPrime         = "prime"
	ToolLCM           = "lcm"
	ToolHCF           = "hcf"
	ToolAIQuery       = "ai_query"
	ToolBFHL          = "bfhl"
	ToolResourceUsage = "get_resource_usage"
)

// integerArrayTool describes a tool taking a single "numbers" array.
func integerArrayTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithArray("numbers",
			mcp.Required(),
			mcp.Description("Non-negative integers"),
			mcp.WithNumberItems(mcp.Min(0)),
			mcp.MinItems(1),
			mcp.MaxItems(request.MaxItems),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// createTools returns every tool definition with its handler.
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(ToolFibonacci,
				mcp.WithDescription("Return the Fibonacci sequence F(0)..F(n) as exact integers"),
				mcp.WithNumber("n",
					mcp.Required(),
					mcp.Description("Index of the last term"),
					mcp.Min(0),
					mcp.Max(request.MaxFibonacci),
				),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithIdempotentHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(false),
			),
			Handler: operationHandler(request.KeyFibonacci, "n"),
		},
		{
			Tool:    integerArrayTool(ToolPrime, "Return the prime elements of numbers in input order"),
			Handler: operationHandler(request.KeyPrime, "numbers"),
		},
		{
			Tool:    integerArrayTool(ToolLCM, "Return the least common multiple of numbers"),
			Handler: operationHandler(request.KeyLCM, "numbers"),
		},
		{
			Tool:    integerArrayTool(ToolHCF, "Return the highest common factor of numbers"),
			Handler: operationHandler(request.KeyHCF, "numbers"),
		},
		{
			Tool: mcp.NewTool(ToolAIQuery,
				mcp.WithDescription("Ask the AI model a question and receive a single-word answer"),
				mcp.WithString("question",
					mcp.Required(),
					mcp.Description("The question to ask"),
					mcp.MinLength(1),
					mcp.MaxLength(request.MaxQuestionLen),
				),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			Handler: operationHandler(request.KeyAI, "question"),
		},
		{
			Tool: mcp.NewTool(ToolBFHL,
				mcp.WithDescription("Process a raw request body exactly as POST /bfhl does. "+
					"The body must carry exactly one of: fibonacci, prime, lcm, hcf, AI"),
				mcp.WithObject("body",
					mcp.Required(),
					mcp.Description(`Request body, e.g. {"fibonacci": 7}`),
				),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			Handler: handleBFHL,
		},
		{
			Tool: mcp.NewTool(ToolResourceUsage,
				mcp.WithDescription("Report memory, garbage collector and runtime statistics of the server process"),
				mcp.WithBoolean("detailed",
					mcp.Description("Include detailed allocator statistics"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("format",
					mcp.Description("Output format"),
					mcp.Enum("json", "markdown"),
					mcp.DefaultString("json"),
				),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(false),
			),
			Handler: handleGetResourceUsage,
		},
	}
}
