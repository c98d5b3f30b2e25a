package history

import (
	"time"

	"github.com/mcph/mcph/internal/mcp"
)

// FileVersion is the history file format version for forward compatibility.
const FileVersion = 1

// Snapshot records one applied configuration change. Snapshots are
// immutable once appended and identified by (ClientName, ServerName,
// Timestamp), with ties broken by insertion order in the store.
type Snapshot struct {
	// ClientName identifies the client adapter that was targeted.
	ClientName string `json:"client_name" yaml:"client_name"`

	// ServerName identifies the logical server entry.
	ServerName string `json:"server_name" yaml:"server_name"`

	// Config is the configuration made active by this snapshot.
	Config mcp.ServerConfig `json:"config" yaml:"config"`

	// PreviousConfig is the configuration active immediately before this
	// snapshot. It is nil only for the first-ever snapshot of a
	// (client, server) pair.
	PreviousConfig *mcp.ServerConfig `json:"previous_config,omitempty" yaml:"previous_config,omitempty"`

	// Timestamp is the creation time assigned by the Manager. Timestamps
	// are non-decreasing per (client, server) key and never mutated.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Description is a human-readable summary of the change.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// historyFile is the on-disk envelope for the snapshot log.
type historyFile struct {
	Version   int        `json:"version"`
	Snapshots []Snapshot `json:"snapshots"`
}
