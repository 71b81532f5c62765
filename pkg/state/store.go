package state

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/types"
)

const backupTimeFormat = "20060102-150405"

var _ types.BindingStore = (*Store)(nil)

// Store is a file-backed types.BindingStore
type Store struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
	now    func() time.Time
}

// NewStore returns a store reading and writing path. The file and its
// directory are created on first save.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		logger: logging.GetLogger("state"),
		now:    time.Now,
	}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted binding. A missing file yields an empty binding.
func (s *Store) Load() (types.Binding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save replaces the persisted binding
func (s *Store) Save(b types.Binding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(b)
}

// Update loads the binding, applies fn and saves the result if fn succeeds.
// The whole cycle runs under the store's lock.
func (s *Store) Update(fn func(b *types.Binding) error) (types.Binding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.load()
	if err != nil {
		return types.Binding{}, err
	}
	original := b.Clone()
	if err := fn(&b); err != nil {
		return original, err
	}
	if err := s.save(b); err != nil {
		return original, err
	}
	return b, nil
}

func (s *Store) load() (types.Binding, error) {
	var b types.Binding

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", s.path).Msg("No state file yet")
			return b, nil
		}
		return b, errors.Wrapf(err, errors.ErrStateLoad, "failed to read state file %s", s.path).
			WithDetail("path", s.path)
	}

	if err := toml.Unmarshal(data, &b); err != nil {
		backup, bErr := s.moveAside()
		if bErr != nil {
			return types.Binding{}, errors.Wrapf(err, errors.ErrStateLoad,
				"state file %s is corrupt and could not be backed up (%v)", s.path, bErr).
				WithDetail("path", s.path)
		}
		s.logger.Warn().Err(err).
			Str("path", s.path).
			Str("backup", backup).
			Msg("State file is corrupt, moved it aside and starting from an empty state")
		return types.Binding{}, nil
	}

	return b, nil
}

func (s *Store) moveAside() (string, error) {
	backup := filepath.Join(filepath.Dir(s.path),
		"state-backup-"+s.now().Format(backupTimeFormat)+".toml")
	if err := os.Rename(s.path, backup); err != nil {
		return "", err
	}
	return backup, nil
}

func (s *Store) save(b types.Binding) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(b); err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to encode state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to create state directory %s", dir)
	}

	if err := writeAtomic(s.path, buf.Bytes()); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to write state file %s", s.path).
			WithDetail("path", s.path)
	}

	s.logger.Debug().Str("path", s.path).Msg("State saved")
	return nil
}

// writeAtomic writes data next to dst and renames it into place
func writeAtomic(dst string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(dst), ".desks-state-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}() // cleanup on error

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Chmod(0644); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, dst)
}
