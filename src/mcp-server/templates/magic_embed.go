// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// EmbedFS is the read-only file system the MCP server loads its
// instructions and reference documents from. Tests substitute an
// in-memory implementation such as [testing/fstest.MapFS].
type EmbedFS interface {
	fs.ReadFileFS
	fs.ReadDirFS
}

// MagicEmbed is the embedded filesystem holding the MCP server
// instructions and the operations reference.
//
// Example usage:
//
//	content, err := templates.MagicEmbed.ReadFile("operations.md")
//	if err != nil {
//		return fmt.Errorf("failed to read operations reference: %w", err)
//	}
var MagicEmbed EmbedFS = embeddedFS
