// Package jsonstore provides a JSON file-based implementation of StateRepository.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// Ensure Store implements domain.StateRepository.
var _ domain.StateRepository = (*Store)(nil)

// Store implements domain.StateRepository using a JSON file.
// Access is serialized across processes with an flock on a sibling lock file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the path of the state file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored record, or a fresh record if the file does not exist.
func (s *Store) Load(ctx context.Context) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record *domain.Record
	err := s.withLock(syscall.LOCK_SH, func() error {
		r, err := s.read()
		record = r
		return err
	})
	return record, err
}

// Save replaces the stored record.
func (s *Store) Save(ctx context.Context, record *domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.withLock(syscall.LOCK_EX, func() error {
		return s.write(record)
	})
}

// Update applies fn to the stored record under an exclusive lock.
func (s *Store) Update(ctx context.Context, fn func(*domain.Record) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.withLock(syscall.LOCK_EX, func() error {
		record, err := s.read()
		if err != nil {
			return err
		}
		if err := fn(record); err != nil {
			return err
		}
		return s.write(record)
	})
}

// withLock executes fn while holding a lock of the given type.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*domain.Record, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewRecord(), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var record domain.Record
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("%w: parse store file: %v", domain.ErrCorruptState, err)
	}
	if record.Mode.Kind == "" {
		record.Mode = domain.Paused()
	}
	if record.History == nil {
		record.History = []domain.Session{}
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *Store) write(record *domain.Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("refusing to write record: %w", err)
	}
	content, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
