// Package gitstore provides a Git plumbing-based implementation of StateRepository.
package gitstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// Ensure Store implements domain.StateRepository.
var _ domain.StateRepository = (*Store)(nil)

// maxUpdateAttempts bounds compare-and-swap retries in Update.
const maxUpdateAttempts = 5

// Store implements domain.StateRepository using Git plumbing (a ref and a blob).
//
// Data structure:
//
//	refs/<namespace>/rational-breaks-history → blob (record YAML)
//
// The ref lives outside refs/heads, so it never shows up as a branch and is
// not pushed unless asked for explicitly.
type Store struct {
	repo      *git.Repository
	namespace string
	mu        sync.Mutex
}

// New opens the repository at repoPath and creates a Store on it.
func New(repoPath, namespace string) (*Store, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotGitRepository, repoPath)
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	return &Store{
		repo:      repo,
		namespace: namespace,
	}
}

// refName returns the ref holding the record blob.
func (s *Store) refName() plumbing.ReferenceName {
	return plumbing.ReferenceName(domain.HistoryRef(s.namespace))
}

// Load returns the stored record, or a fresh record if the ref does not exist.
func (s *Store) Load(ctx context.Context) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.load()
	return record, err
}

// Save replaces the stored record.
func (s *Store) Save(ctx context.Context, record *domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeRecord(record)
	if err != nil {
		return err
	}
	if err := s.repo.Storer.SetReference(plumbing.NewHashReference(s.refName(), hash)); err != nil {
		return fmt.Errorf("set ref: %w", err)
	}
	return nil
}

// Update applies fn to the stored record. The ref is moved with a
// compare-and-swap; if another writer moved it first, the update is retried
// on the new record.
func (s *Store) Update(ctx context.Context, fn func(*domain.Record) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for range maxUpdateAttempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, old, err := s.load()
		if err != nil {
			return err
		}
		if err := fn(record); err != nil {
			return err
		}

		hash, err := s.writeRecord(record)
		if err != nil {
			return err
		}

		err = s.repo.Storer.CheckAndSetReference(plumbing.NewHashReference(s.refName(), hash), old)
		if errors.Is(err, storage.ErrReferenceHasChanged) {
			continue
		}
		if err != nil {
			return fmt.Errorf("set ref: %w", err)
		}
		return nil
	}
	return fmt.Errorf("update %s: %w", s.refName(), storage.ErrReferenceHasChanged)
}

// load reads the record and the ref it came from. The ref is nil when the
// record does not exist yet.
func (s *Store) load() (*domain.Record, *plumbing.Reference, error) {
	ref, err := s.repo.Reference(s.refName(), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return domain.NewRecord(), nil, nil
		}
		return nil, nil, fmt.Errorf("get ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return nil, nil, fmt.Errorf("read record: %w", err)
	}

	var record domain.Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, nil, fmt.Errorf("%w: decode record: %v", domain.ErrCorruptState, err)
	}
	if record.Mode.Kind == "" {
		record.Mode = domain.Paused()
	}
	if record.History == nil {
		record.History = []domain.Session{}
	}
	if err := record.Validate(); err != nil {
		return nil, nil, err
	}

	return &record, ref, nil
}

func (s *Store) writeRecord(record *domain.Record) (plumbing.Hash, error) {
	if err := record.Validate(); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("refusing to write record: %w", err)
	}
	data, err := yaml.Marshal(record)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode record: %w", err)
	}
	return s.writeBlob(data)
}

// writeBlob stores data as a blob object.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

// readBlob reads the contents of a blob.
func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	return io.ReadAll(reader)
}
