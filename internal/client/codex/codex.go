// Package codex adapts the Codex CLI, which stores its MCP servers as
// [mcp_servers.<name>] tables in ~/.codex/config.toml. Unlike the JSON
// clients this one speaks TOML, so it carries its own read/write path
// instead of the shared mcpjson store. Settings outside mcp_servers are
// preserved across writes.
package codex

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mcph/mcph/internal/backup"
	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/mcp"
	"github.com/mcph/mcph/internal/paths"
	"github.com/mcph/mcph/pkg/fileutil"
)

const serversTable = "mcp_servers"

// serverEntry is the on-disk shape of one [mcp_servers.<name>] table.
type serverEntry struct {
	Command string            `toml:"command"`
	Args    []string          `toml:"args"`
	Env     map[string]string `toml:"env,omitempty"`
}

// Client manages Codex's MCP server configuration.
type Client struct {
	configPath string
	backups    *backup.Manager
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

// New creates a Codex client rooted at the given home directory.
func New(home string, opts ...Option) *Client {
	c := &Client{
		configPath: paths.ClientConfigPath(paths.ClientCodex, home),
		backups:    backup.NewManager(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the client identifier.
func (c *Client) Name() string {
	return paths.ClientCodex
}

// ConfigPath returns the path to ~/.codex/config.toml.
func (c *Client) ConfigPath() string {
	return c.configPath
}

// IsInstalled reports whether the ~/.codex directory exists.
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

// AddServer adds or replaces a server table.
func (c *Client) AddServer(name string, cfg mcp.ServerConfig) error {
	if name == "" {
		return errors.New("server name is required")
	}

	doc, servers, err := c.load()
	if err != nil {
		return err
	}

	entry := map[string]any{
		"command": cfg.Command,
		"args":    cfg.Args,
	}
	if cfg.Args == nil {
		entry["args"] = []string{}
	}
	if len(cfg.Env) > 0 {
		entry["env"] = cfg.Env
	}
	servers[name] = entry

	return c.save(doc, servers)
}

// RemoveServer deletes a server table. Removing an absent entry is a no-op.
func (c *Client) RemoveServer(name string) error {
	doc, servers, err := c.load()
	if err != nil {
		return err
	}

	if _, ok := servers[name]; !ok {
		return nil
	}
	delete(servers, name)

	return c.save(doc, servers)
}

// ListServers returns all configured servers.
func (c *Client) ListServers() (map[string]mcp.ServerConfig, error) {
	_, servers, err := c.load()
	if err != nil {
		return nil, err
	}

	out := make(map[string]mcp.ServerConfig, len(servers))
	for name, raw := range servers {
		data, err := toml.Marshal(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "re-encoding server %q", name)
		}
		var entry serverEntry
		if err := toml.Unmarshal(data, &entry); err != nil {
			return nil, errors.Wrapf(err, "parsing server %q", name)
		}
		out[name] = mcp.ServerConfig{
			Command: entry.Command,
			Args:    entry.Args,
			Env:     entry.Env,
		}
	}
	return out, nil
}

// load reads config.toml into a raw document plus the mcp_servers table.
// A missing file yields empty values.
func (c *Client) load() (map[string]any, map[string]any, error) {
	doc := make(map[string]any)
	servers := make(map[string]any)

	data, err := fileutil.ReadFileWithLimit(c.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, servers, nil
		}
		return nil, nil, errors.Wrap(err, "reading codex config")
	}

	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "parsing codex config")
	}

	if raw, ok := doc[serversTable]; ok {
		table, ok := raw.(map[string]any)
		if !ok {
			return nil, nil, errors.Newf("codex config: %s is not a table", serversTable)
		}
		servers = table
	}

	return doc, servers, nil
}

// save backs up the current file and writes the document atomically.
func (c *Client) save(doc map[string]any, servers map[string]any) error {
	if err := c.backups.Backup(c.Name(), c.configPath); err != nil {
		return errors.Wrap(err, "backing up config file")
	}

	doc[serversTable] = servers

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshaling codex config")
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteFile(c.configPath, data, 0o600); err != nil {
		return errors.Wrap(err, "writing codex config")
	}
	return nil
}
