// Package deps probes the external tools MCP servers rely on (Node.js,
// Python, Docker, Git) and compares installed versions against
// requirement expressions like ">=18.0.0" or "^3.10.0".
package deps
