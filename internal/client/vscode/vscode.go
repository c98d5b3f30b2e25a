// Package vscode adapts Visual Studio Code, which stores its MCP servers
// under the "servers" key of ~/.vscode/mcp.json.
package vscode

import (
	"os"
	"path/filepath"

	"github.com/mcph/mcph/internal/backup"
	"github.com/mcph/mcph/internal/client/mcpjson"
	"github.com/mcph/mcph/internal/mcp"
	"github.com/mcph/mcph/internal/paths"
)

// Client manages VS Code's MCP server configuration.
type Client struct {
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

// New creates a VS Code client rooted at the given home directory.
func New(home string, opts ...Option) *Client {
	c := &Client{
		configPath: paths.ClientConfigPath(paths.ClientVSCode, home),
	}
	for _, opt := range opts {
		opt(c)
	}

	var storeOpts []mcpjson.Option
	if c.backups != nil {
		storeOpts = append(storeOpts, mcpjson.WithBackups(c.backups))
	}
	c.store = mcpjson.NewStore(paths.ClientVSCode, c.configPath, "servers", storeOpts...)
	return c
}

// Name returns the client identifier.
func (c *Client) Name() string {
	return paths.ClientVSCode
}

// ConfigPath returns the path to ~/.vscode/mcp.json.
func (c *Client) ConfigPath() string {
	return c.configPath
}

// IsInstalled reports whether the ~/.vscode directory exists.
func (c *Client) IsInstalled() bool {
	if c.configPath == "" {
		return false
	}
	if _, err := os.Stat(c.configPath); err == nil {
		return true
	}
	_, err := os.Stat(filepath.Dir(c.configPath))
	return err == nil
}

// AddServer adds or replaces a server entry.
func (c *Client) AddServer(name string, cfg mcp.ServerConfig) error {
	return c.store.SetServer(name, cfg)
}

// RemoveServer deletes a server entry.
func (c *Client) RemoveServer(name string) error {
	return c.store.RemoveServer(name)
}

// ListServers returns all configured servers.
func (c *Client) ListServers() (map[string]mcp.ServerConfig, error) {
	return c.store.ListServers()
}
