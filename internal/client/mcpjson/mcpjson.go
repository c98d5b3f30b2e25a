// Package mcpjson reads and writes the JSON config files shared by most MCP
// clients: a top-level object holding a server map under a well-known key
// ("mcpServers" for Claude and friends, "servers" for VS Code).
//
// Fields outside the server map are preserved byte-for-byte across writes.
// Claude Code in particular keeps unrelated application state (projects,
// feature flags) as siblings of mcpServers in ~/.claude.json, and clobbering
// it would corrupt the application.
package mcpjson

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mcph/mcph/internal/backup"
	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/mcp"
	"github.com/mcph/mcph/pkg/fileutil"
)

// serverEntry is the on-disk shape of a single server record.
type serverEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// Store manages the server map of one client config file.
type Store struct {
	clientName string
	path       string
	serversKey string
	backups    *backup.Manager
}

// Option configures a Store.
type Option func(*Store)

// WithBackups sets the backup manager used before overwrites.
func WithBackups(m *backup.Manager) Option {
	return func(s *Store) {
		s.backups = m
	}
}

// NewStore creates a Store for the given client config file. serversKey is
// the top-level JSON key holding the server map.
func NewStore(clientName, path, serversKey string, opts ...Option) *Store {
	s := &Store{
		clientName: clientName,
		path:       path,
		serversKey: serversKey,
		backups:    backup.NewManager(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// ListServers returns all server entries keyed by name. A missing config
// file yields an empty map.
func (s *Store) ListServers() (map[string]mcp.ServerConfig, error) {
	_, servers, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make(map[string]mcp.ServerConfig, len(servers))
	for name, raw := range servers {
		var entry serverEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
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

// SetServer adds or replaces a server entry and persists the file.
func (s *Store) SetServer(name string, cfg mcp.ServerConfig) error {
	if name == "" {
		return errors.New("server name is required")
	}

	doc, servers, err := s.load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(serverEntry{
		Command: cfg.Command,
		Args:    cfg.Args,
		Env:     cfg.Env,
	})
	if err != nil {
		return errors.Wrap(err, "marshaling server entry")
	}
	servers[name] = raw

	return s.save(doc, servers)
}

// RemoveServer deletes a server entry and persists the file. Removing an
// absent entry is a no-op.
func (s *Store) RemoveServer(name string) error {
	doc, servers, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := servers[name]; !ok {
		return nil
	}
	delete(servers, name)

	return s.save(doc, servers)
}

// load reads the config file into a raw top-level document plus the decoded
// server map. A missing file yields empty values.
func (s *Store) load() (map[string]json.RawMessage, map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)
	servers := make(map[string]json.RawMessage)

	data, err := fileutil.ReadFileWithLimit(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, servers, nil
		}
		return nil, nil, errors.Wrapf(err, "reading %s config", s.clientName)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.Wrapf(err, "parsing %s config", s.clientName)
	}

	if raw, ok := doc[s.serversKey]; ok {
		if err := json.Unmarshal(raw, &servers); err != nil {
			return nil, nil, errors.Wrapf(err, "parsing %s server map", s.clientName)
		}
	}

	return doc, servers, nil
}

// save backs up the current file, re-embeds the server map, and writes the
// document atomically.
func (s *Store) save(doc map[string]json.RawMessage, servers map[string]json.RawMessage) error {
	if err := s.backups.Backup(s.clientName, s.path); err != nil {
		return errors.Wrap(err, "backing up config file")
	}

	raw, err := json.Marshal(servers)
	if err != nil {
		return errors.Wrap(err, "marshaling server map")
	}
	doc[s.serversKey] = raw

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteJSON(s.path, doc); err != nil {
		return errors.Wrapf(err, "writing %s config", s.clientName)
	}
	return nil
}
