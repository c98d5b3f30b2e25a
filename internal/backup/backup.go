// Package backup preserves client config files before mcph overwrites them.
//
// Each backup is a timestamped copy under <backup root>/<client>/; retention
// keeps the newest N copies per client so repeated applies don't accumulate
// unbounded state.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/mcph/mcph/internal/paths"
	"github.com/mcph/mcph/pkg/fileutil"
)

// DefaultRetention is the default number of backups kept per client.
const DefaultRetention = 5

// Manager creates and prunes client config file backups.
type Manager struct {
	rootDir   string
	retention int
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetention sets the number of backups to retain per client.
func WithRetention(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retention = n
		}
	}
}

// WithClock sets the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a backup Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:   paths.BackupDir(),
		retention: DefaultRetention,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backup copies the file at path into the client's backup directory and
// prunes old copies. A missing source file is not an error; there is simply
// nothing to preserve.
func (m *Manager) Backup(client, path string) error {
	if client == "" {
		return errors.New("client is required")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}

	dir := filepath.Join(m.rootDir, client)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "creating backup directory")
	}

	name := fmt.Sprintf("%s-%s", m.now().Format("20060102T150405"), filepath.Base(path))
	dst := filepath.Join(dir, name)

	// Avoid clobbering a backup taken within the same second.
	for i := 1; ; i++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		dst = filepath.Join(dir, fmt.Sprintf("%s.%d", name, i))
	}

	if err := fileutil.CopyFile(path, dst); err != nil {
		return errors.Wrap(err, "copying config file")
	}

	return m.prune(dir)
}

// List returns the backup file paths for a client, newest first.
func (m *Manager) List(client string) ([]string, error) {
	dir := filepath.Join(m.rootDir, client)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	// Timestamped names sort chronologically; reverse for newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(dir, n)
	}
	return out, nil
}

// prune removes the oldest backups beyond the retention count.
func (m *Manager) prune(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "reading backup directory")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) <= m.retention {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-m.retention] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return errors.Wrapf(err, "removing old backup %s", name)
		}
	}
	return nil
}
