// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PromptCompute is the name of the guided computation prompt.
const PromptCompute = "bfhl-compute"

// createPrompts returns all prompt definitions with their handlers.
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt(PromptCompute,
				mcp.WithPromptDescription("Pick the right bfhl tool for a task and run it"),
				mcp.WithArgument("task",
					mcp.ArgumentDescription("What to compute, e.g. 'first 10 Fibonacci numbers' or 'LCM of 12 and 18'"),
					mcp.RequiredArgument(),
				),
			),
			Handler: handleComputePrompt,
		},
	}
}

// handleComputePrompt guides the client from a free-form task to one tool call.
func handleComputePrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	task := request.Params.Arguments["task"]
	if task == "" {
		return nil, fmt.Errorf("task argument is required")
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(fmt.Sprintf("Task: %s", task)),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll solve this with exactly one tool call:

- %[1]s(n) for the sequence F(0)..F(n), n at most 10000
- %[2]s(numbers) to keep the prime elements
- %[3]s(numbers) or %[4]s(numbers) for the least common multiple or highest common factor
- %[5]s(question) for a one-word AI answer

Numbers must be non-negative integers and arrays hold 1 to 100 of them.
The result comes back as {"is_success", "official_email", "data"} and failures carry an "error" message instead of data.`,
				ToolFibonacci, ToolPrime, ToolLCM, ToolHCF, ToolAIQuery)),
		),
	}

	return mcp.NewGetPromptResult("Guided bfhl computation", messages), nil
}
