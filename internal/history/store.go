package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/paths"
	"github.com/mcph/mcph/pkg/fileutil"
)

// historyFileName is the single log file holding all snapshots.
const historyFileName = "history.json"

// Store is the durable, append-only snapshot log. It persists one JSON file
// and rereads it on every operation; call volume is human-interactive, so
// append-durability matters and indexing does not.
//
// Concurrent processes are not coordinated: the file itself stays intact
// thanks to atomic replacement, but two racing appends follow last-writer-
// wins semantics. Within a process the Store assumes a single writer.
type Store struct {
	dir string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDir overrides the directory holding the history file. Used by tests.
func WithDir(dir string) StoreOption {
	return func(s *Store) {
		s.dir = dir
	}
}

// NewStore creates a snapshot store. The default location is
// <XDG data home>/mcph/config-history/.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		dir: paths.HistoryDir(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append persists a new snapshot at the end of the log. Existing records
// are never rewritten.
func (s *Store) Append(snap Snapshot) error {
	hf, err := s.load()
	if err != nil {
		return err
	}

	hf.Snapshots = append(hf.Snapshots, snap)
	return s.save(hf)
}

// Query returns snapshots matching the given filters, newest first. An
// empty filter matches any value. Equal timestamps are ordered by reverse
// insertion order, so the most recently appended comes first.
func (s *Store) Query(clientFilter, serverFilter string) ([]Snapshot, error) {
	hf, err := s.load()
	if err != nil {
		return nil, err
	}

	// Collect matches in reverse insertion order, then stable-sort by
	// timestamp descending so insertion order breaks ties.
	var out []Snapshot
	for i := len(hf.Snapshots) - 1; i >= 0; i-- {
		snap := hf.Snapshots[i]
		if clientFilter != "" && snap.ClientName != clientFilter {
			continue
		}
		if serverFilter != "" && snap.ServerName != serverFilter {
			continue
		}
		out = append(out, snap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}

// Latest returns the newest snapshot for the exact (client, server) key, or
// nil if none exists yet.
func (s *Store) Latest(clientName, serverName string) (*Snapshot, error) {
	matches, err := s.Query(clientName, serverName)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	snap := matches[0]
	return &snap, nil
}

// Prune discards all but the newest max snapshots. It is an explicit
// maintenance operation; nothing calls it implicitly, so apply and rollback
// never shrink history.
func (s *Store) Prune(max int) error {
	if max < 0 {
		return errors.Newf("invalid retention count %d", max)
	}

	hf, err := s.load()
	if err != nil {
		return err
	}

	if len(hf.Snapshots) <= max {
		return nil
	}
	hf.Snapshots = hf.Snapshots[len(hf.Snapshots)-max:]
	return s.save(hf)
}

// Len returns the number of recorded snapshots.
func (s *Store) Len() (int, error) {
	hf, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(hf.Snapshots), nil
}

// load reads the history file. A missing file yields an empty log; a
// malformed or unreadable one is an error, never silently reset.
func (s *Store) load() (*historyFile, error) {
	path := filepath.Join(s.dir, historyFileName)

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &historyFile{Version: FileVersion}, nil
		}
		return nil, errors.Wrap(err, "reading history file")
	}

	var hf historyFile
	if err := json.Unmarshal(data, &hf); err != nil {
		return nil, errors.Wrap(err, "parsing history file")
	}
	if hf.Version > FileVersion {
		return nil, errors.Newf("history file version %d is newer than supported version %d",
			hf.Version, FileVersion)
	}
	return &hf, nil
}

// save writes the history file atomically.
func (s *Store) save(hf *historyFile) error {
	if err := paths.EnsureDir(s.dir, 0); err != nil {
		return errors.Wrap(err, "creating history directory")
	}

	hf.Version = FileVersion
	path := filepath.Join(s.dir, historyFileName)
	if err := fileutil.AtomicWriteJSON(path, hf); err != nil {
		return errors.Wrap(err, "writing history file")
	}
	return nil
}
