// Package main provides the entry point for the readmegen CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	readmegenmcp "github.com/splinterwood/readmegen/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run readmegen as a Model Context Protocol (MCP) server over stdio.

This exposes readmegen operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "readmegen": {
        "command": "readmegen",
        "args": ["serve"]
      }
    }
  }

Available tools: generate, tree, fragments`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := readmegenmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
