// Package client defines the adapter contract for MCP client applications
// and a registry over the supported adapters.
//
// Each supported application (Claude Desktop, Claude Code, Cursor, VS Code,
// Windsurf, Codex) implements the Client interface in its own subpackage.
// Adapters are constructed from an injected home directory so tests can run
// entirely against a temp directory.
package client
