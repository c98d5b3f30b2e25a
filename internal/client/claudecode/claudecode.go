// Package claudecode adapts the Claude Code CLI. Its MCP servers live under
// the "mcpServers" key of ~/.claude.json, alongside unrelated application
// state (projects, feature flags) that must survive every write untouched.
package claudecode

import (
	"os"
	"path/filepath"

	"github.com/mcph/mcph/internal/backup"
	"github.com/mcph/mcph/internal/client/mcpjson"
	"github.com/mcph/mcph/internal/mcp"
	"github.com/mcph/mcph/internal/paths"
)

// Client manages Claude Code's MCP server configuration.
type Client struct {
	home       string
	configPath string
	backups    *backup.Manager
	store      *mcpjson.Store
}

// Option configures a Client.
type Option func(*Client)

// WithConfigPath overrides the config file location. Used by tests.
func WithConfigPath(path string) Option {
	return func(c *Client) {
		c.configPath = path
	}
}

// WithBackups sets the backup manager used before overwrites.
func WithBackups(m *backup.Manager) Option {
	return func(c *Client) {
		c.backups = m
	}
}

// New creates a Claude Code client rooted at the given home directory.
func New(home string, opts ...Option) *Client {
	c := &Client{
		home:       home,
		configPath: paths.ClientConfigPath(paths.ClientClaudeCode, home),
	}
	for _, opt := range opts {
		opt(c)
	}

	var storeOpts []mcpjson.Option
	if c.backups != nil {
		storeOpts = append(storeOpts, mcpjson.WithBackups(c.backups))
	}
	c.store = mcpjson.NewStore(paths.ClientClaudeCode, c.configPath, "mcpServers", storeOpts...)
	return c
}

// Name returns the client identifier.
func (c *Client) Name() string {
	return paths.ClientClaudeCode
}

// ConfigPath returns the path to ~/.claude.json.
func (c *Client) ConfigPath() string {
	return c.configPath
}

// IsInstalled reports whether Claude Code appears present: either
// ~/.claude.json or the ~/.claude directory exists.
func (c *Client) IsInstalled() bool {
	if c.configPath == "" {
		return false
	}
	if _, err := os.Stat(c.configPath); err == nil {
		return true
	}
	if c.home == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(c.home, ".claude"))
	return err == nil
}

// AddServer adds or replaces a server entry in the user-scoped server map.
// Project-scoped entries under "projects" are never touched.
func (c *Client) AddServer(name string, cfg mcp.ServerConfig) error {
	return c.store.SetServer(name, cfg)
}

// RemoveServer deletes a server entry.
func (c *Client) RemoveServer(name string) error {
	return c.store.RemoveServer(name)
}

// ListServers returns all user-scoped servers.
func (c *Client) ListServers() (map[string]mcp.ServerConfig, error) {
	return c.store.ListServers()
}
