// Package kv implements a file-backed key-value blob store.
//
// Each key maps to one JSON file in the store directory. Writes go through
// a temp file and an atomic rename, under an exclusive flock, so a reader
// never observes a partially written blob.
package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"syscall"
)

// Store manages keyed blobs under a single directory.
type Store struct {
	dir string
}

var validKey = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) blobPath(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *Store) lockPath() string {
	return filepath.Join(s.dir, ".lock")
}

// Get reads the blob stored under key. A missing key returns (nil, nil).
func (s *Store) Get(key string) ([]byte, error) {
	path, err := s.blobPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", key, err)
	}
	return data, nil
}

// Put writes the blob under key, replacing any previous value.
func (s *Store) Put(key string, data []byte) error {
	path, err := s.blobPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	return s.withLock(func() error {
		return writeAtomic(path, data)
	})
}

// Delete removes the blob under key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	path, err := s.blobPath(key)
	if err != nil {
		return err
	}

	return s.withLock(func() error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove blob %s: %w", key, err)
		}
		return nil
	})
}

// withLock executes fn while holding an exclusive lock on the store.
func (s *Store) withLock(fn func() error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()

	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
