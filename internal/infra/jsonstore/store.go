// Package jsonstore provides a JSON file-based implementation of BlobStore.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/nearby/internal/domain"
)

// errCorrupt marks a store file that exists but cannot be parsed.
var errCorrupt = errors.New("corrupt store file")

// storeData represents the JSON file structure: one entry per key.
type storeData struct {
	Blobs map[string]string `json:"blobs"`
}

// Store implements domain.BlobStore using a single JSON file.
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

// Get returns the payload stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.withLock(func(data *storeData) error {
		value, found = data.Blobs[key]
		return nil
	})
	return value, found, err
}

// Set replaces the payload stored under key. If the file is corrupt it is
// moved to BackupPath and the store restarts empty.
func (s *Store) Set(key, value string) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Blobs[key] = value
		return nil
	})
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// BackupPath returns where a corrupt store file is moved before the next write.
func (s *Store) BackupPath() string {
	return s.path + ".bak"
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if errors.Is(err, errCorrupt) {
		// Keep the unreadable file next to the store and start over.
		if err := os.Rename(s.path, s.BackupPath()); err != nil {
			return fmt.Errorf("back up corrupt store file: %w", err)
		}
		data, err = &storeData{Blobs: make(map[string]string)}, nil
	}
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
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

// read loads the file. A missing file is an empty store.
func (s *Store) read() (*storeData, error) {
	data := &storeData{Blobs: make(map[string]string)}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if err := json.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorrupt, err)
	}

	if data.Blobs == nil {
		data.Blobs = make(map[string]string)
	}

	return data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
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

// Ensure Store implements BlobStore.
var _ domain.BlobStore = (*Store)(nil)
