// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	URIConfig     = "config://template"
	URIVersion    = "info://version"
	URIOperations = "docs://operations"
	URIStatus     = "status://server-status"
)

// createResources returns the static and dynamic resources backed by deps.
func createResources(deps *ServerDependencies) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(URIConfig, "Configuration",
				mcp.WithResourceDescription("Effective server configuration with secrets redacted"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: configResourceHandler(deps),
		},
		{
			Resource: mcp.NewResource(URIVersion, "Version Information",
				mcp.WithResourceDescription("Server version, tools and operation limits"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: versionResourceHandler(deps),
		},
		{
			Resource: mcp.NewResource(URIOperations, "Operations Reference",
				mcp.WithResourceDescription("Request keys, accepted values and results of every operation"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: operationsResourceHandler(deps),
		},
		{
			Resource: mcp.NewResource(URIStatus, "Server Status",
				mcp.WithResourceDescription("Current health and AI availability"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: statusResourceHandler(deps),
		},
	}
}
