package history

import (
	"fmt"
	"time"

	"github.com/mcph/mcph/internal/client"
	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/mcp"
)

// snapshotStore is the subset of Store the Manager needs.
type snapshotStore interface {
	Append(snap Snapshot) error
	Query(clientFilter, serverFilter string) ([]Snapshot, error)
	Latest(clientName, serverName string) (*Snapshot, error)
}

// Manager coordinates configuration changes: it writes the new config
// through the client adapter and records what happened in the snapshot
// store. The adapter write always happens first, so a failed write leaves
// history untouched.
type Manager struct {
	store snapshotStore
	now   func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager backed by the given store.
func NewManager(store snapshotStore, opts ...ManagerOption) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ApplyConfig writes config for serverName through the client adapter, then
// records a snapshot linking back to the previous applied config. The
// appended snapshot is returned.
//
// If the adapter write fails, no snapshot is recorded and the error is
// returned as-is. If the write succeeds but recording fails, the returned
// error wraps ErrAppliedNotRecorded: the client config has changed but
// history does not reflect it.
func (m *Manager) ApplyConfig(c client.Client, serverName string, config mcp.ServerConfig) (*Snapshot, error) {
	prev, err := m.store.Latest(c.Name(), serverName)
	if err != nil {
		return nil, err
	}

	if err := c.AddServer(serverName, config); err != nil {
		return nil, errors.Wrapf(err, "applying config for %s", serverName)
	}

	snap := Snapshot{
		ClientName:  c.Name(),
		ServerName:  serverName,
		Config:      config.Clone(),
		Timestamp:   m.timestamp(prev),
		Description: fmt.Sprintf("Configuration update for %s", serverName),
	}
	if prev != nil {
		pc := prev.Config.Clone()
		snap.PreviousConfig = &pc
	}

	if err := m.store.Append(snap); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrAppliedNotRecorded),
			"config for %s was applied but not recorded", serverName)
	}
	return &snap, nil
}

// Rollback restores the configuration that target replaced, writing
// target.PreviousConfig back through the client adapter. The restore is
// recorded as a new snapshot, so history stays append-only and a rollback
// can itself be rolled back. Any recorded snapshot may be the target, not
// just the newest one.
func (m *Manager) Rollback(c client.Client, target *Snapshot) (*Snapshot, error) {
	if target == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no snapshot to roll back on %s", c.Name())
	}
	if target.PreviousConfig == nil {
		return nil, errors.Wrapf(errors.ErrNoPreviousConfig,
			"snapshot from %s is the first recorded config for %s",
			target.Timestamp.Format(time.RFC3339), target.ServerName)
	}

	// Timestamps clamp against the newest snapshot for the key, which may
	// be newer than the target.
	latest, err := m.store.Latest(c.Name(), target.ServerName)
	if err != nil {
		return nil, err
	}

	restored := target.PreviousConfig.Clone()
	if err := c.AddServer(target.ServerName, restored); err != nil {
		return nil, errors.Wrapf(err, "restoring config for %s", target.ServerName)
	}

	cur := target.Config.Clone()
	snap := Snapshot{
		ClientName:     c.Name(),
		ServerName:     target.ServerName,
		Config:         restored.Clone(),
		PreviousConfig: &cur,
		Timestamp:      m.timestamp(latest),
		Description: fmt.Sprintf("Rollback from %s to previous configuration",
			target.Timestamp.Format(time.RFC3339)),
	}

	if err := m.store.Append(snap); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrAppliedNotRecorded),
			"rollback of %s was applied but not recorded", target.ServerName)
	}
	return &snap, nil
}

// RollbackLatest undoes the newest recorded change for (client, server).
func (m *Manager) RollbackLatest(c client.Client, serverName string) (*Snapshot, error) {
	latest, err := m.store.Latest(c.Name(), serverName)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no history for %s on %s", serverName, c.Name())
	}
	return m.Rollback(c, latest)
}

// GetHistory returns recorded snapshots newest first, optionally filtered
// by client and server name.
func (m *Manager) GetHistory(clientFilter, serverFilter string) ([]Snapshot, error) {
	return m.store.Query(clientFilter, serverFilter)
}

// GetLatestSnapshot returns the newest snapshot for (client, server), or
// nil if none exists.
func (m *Manager) GetLatestSnapshot(clientName, serverName string) (*Snapshot, error) {
	return m.store.Latest(clientName, serverName)
}

// timestamp returns the current time, clamped so it never precedes the
// previous snapshot for the same key. Clock skew must not reorder history.
func (m *Manager) timestamp(prev *Snapshot) time.Time {
	ts := m.now().UTC()
	if prev != nil && ts.Before(prev.Timestamp) {
		return prev.Timestamp
	}
	return ts
}
