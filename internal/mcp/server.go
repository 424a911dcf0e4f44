// Package mcp provides a Model Context Protocol server for readmegen.
// It exposes README generation as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all readmegen tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "readmegen",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all readmegen tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Render the README from template fragments and write it. With dry_run=true nothing is written and the normalized directory tree is returned instead.",
		Annotations: writeAnnotations(),
	}, handleGenerate())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tree",
		Description: "Produce the normalized directory tree that would be embedded in the README, along with the tier of the tool that produced it (preferred, fallback, or unavailable).",
		Annotations: readOnlyAnnotations(),
	}, handleTree())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fragments",
		Description: "List the resolved template fragments in render order with the tier each one came from (flag, project, global, or built-in).",
		Annotations: readOnlyAnnotations(),
	}, handleFragments())
}
