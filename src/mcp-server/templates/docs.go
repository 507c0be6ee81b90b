// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server
// template files: the server instructions rendered at start-up and the
// operations reference served as a resource.
//
// Files are reached through the [EmbedFS] interface, with [MagicEmbed] as
// the default implementation.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/bfhl/src/mcp-server/templates"
//
//	tmpl, err := templates.MagicEmbed.ReadFile("bfhl_instructions.md")
//	if err != nil {
//		return fmt.Errorf("failed to load instructions template: %w", err)
//	}
package templates
