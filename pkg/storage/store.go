// Package storage provides a locked JSON document store.
// Each store owns exactly one file; every read-modify-write goes through
// Update so concurrent handlers never interleave partial writes.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
)

var (
	// ErrCorruptData indicates the on-disk file is not valid JSON.
	ErrCorruptData = errors.New("storage: corrupt document")

	// ErrNoChange can be returned by an Update callback to skip the write.
	// Update then returns the current document with a nil error.
	ErrNoChange = errors.New("storage: document unchanged")
)

// Store is a JSON document store bound to a single file path.
// The mutex serializes all access to that file; two different stores may be
// updated concurrently with no ordering guarantee between them.
type Store[T any] struct {
	path string
	mu   sync.Mutex
}

// New creates a store for the given path. If the file does not exist it is
// initialized with defaultDoc.
func New[T any](path string, defaultDoc T) (*Store[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creando directorio de datos: %w", err)
	}

	s := &Store[T]{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeLocked(defaultDoc); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the file path backing this store.
func (s *Store[T]) Path() string {
	return s.path
}

// Read loads the current on-disk document.
func (s *Store[T]) Read() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// Write atomically replaces the on-disk document.
func (s *Store[T]) Write(doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(doc)
}

// Update acquires the store lock, reads the current document, applies fn and
// persists the result. If fn returns an error nothing is written and the
// error propagates; ErrNoChange skips the write without error. This is the
// only supported primitive for read-modify-write sequences — pairing Read
// with a later Write reintroduces the race this store exists to prevent.
func (s *Store[T]) Update(fn func(doc T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	doc, err := s.readLocked()
	if err != nil {
		return zero, err
	}

	next, err := fn(doc)
	if err != nil {
		if errors.Is(err, ErrNoChange) {
			return doc, nil
		}
		return zero, err
	}

	if err := s.writeLocked(next); err != nil {
		return zero, err
	}
	return next, nil
}

func (s *Store[T]) readLocked() (T, error) {
	var doc T

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return doc, err
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w (%s): %v", ErrCorruptData, s.path, err)
	}
	return doc, nil
}

// writeLocked serializes doc to a temp file and renames it over the target,
// so a crash mid-write never leaves a truncated document behind.
func (s *Store[T]) writeLocked(doc T) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
