package client

import (
	"sort"
	"strings"
	"sync"

	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/mcp"
	"github.com/mcph/mcph/internal/paths"
)

// Client is the contract every MCP client adapter implements. An adapter
// owns one application's persisted server-name to ServerConfig mapping.
//
// AddServer must be an idempotent upsert, must write the config file
// atomically, and must back up the prior file before overwriting it.
type Client interface {
	// Name returns the client identifier (e.g., paths.ClientCursor).
	Name() string

	// ConfigPath returns the path to the client's MCP config file.
	ConfigPath() string

	// IsInstalled reports whether the client appears to be present on this
	// machine.
	IsInstalled() bool

	// AddServer adds or replaces a server entry in the client's config.
	AddServer(name string, cfg mcp.ServerConfig) error

	// RemoveServer deletes a server entry. Removing an absent entry is not
	// an error.
	RemoveServer(name string) error

	// ListServers returns all configured servers keyed by name.
	ListServers() (map[string]mcp.ServerConfig, error)
}

// Registry holds a set of client adapters. It is constructed explicitly per
// invocation; there is no process-wide registry.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]Client
}

// NewRegistry creates an empty client registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]Client),
	}
}

// Register adds a client to the registry, replacing any previous client
// with the same name.
func (r *Registry) Register(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[strings.ToLower(c.Name())] = c
}

// ByName returns the client with the given name (case-insensitive).
// Returns ErrClientNotFound if no such client is registered.
func (r *Registry) ByName(name string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(errors.ErrClientNotFound, "%q", name)
	}
	return c, nil
}

// All returns registered clients in the deterministic order defined by
// paths.Clients(). Clients registered under names outside that list are
// appended in lexicographic order.
func (r *Registry) All() []Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Client, 0, len(r.clients))
	seen := make(map[string]bool, len(r.clients))

	for _, name := range paths.Clients() {
		if c, ok := r.clients[name]; ok {
			out = append(out, c)
			seen[name] = true
		}
	}

	var rest []string
	for name := range r.clients {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, r.clients[name])
	}

	return out
}

// Installed returns registered clients that appear to be installed, in the
// same deterministic order as All.
func (r *Registry) Installed() []Client {
	all := r.All()
	out := make([]Client, 0, len(all))
	for _, c := range all {
		if c.IsInstalled() {
			out = append(out, c)
		}
	}
	return out
}
