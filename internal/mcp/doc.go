// Package mcp defines the canonical MCP server configuration value type
// shared by every client adapter, and the diff routine that renders the
// difference between two configurations as a human-readable change list.
package mcp
