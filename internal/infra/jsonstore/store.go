// Package jsonstore provides a JSON file-based implementation of StateStore.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/runoshun/oss-curator/internal/domain"
)

// Store errors.
var (
	ErrNotJSON = errors.New("value is not valid JSON")
	ErrCorrupt = errors.New("state file is corrupt")
)

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Records map[string]json.RawMessage `json:"records"`
	Meta    meta                       `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store implements domain.StateStore using a JSON file.
// Records are kept verbatim so the file stays readable.
type Store struct {
	now      func() time.Time
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
		now:      time.Now,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// CorruptPath is where an unreadable state file is kept before it is replaced.
func (s *Store) CorruptPath() string {
	return s.path + ".corrupt"
}

// Read returns the record stored under key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.withLock(func(data *storeData) error {
		raw, ok := data.Records[key]
		if !ok {
			return domain.ErrStateNotFound
		}
		// The file is indented; hand back the compact form.
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("record %s: %w", key, err)
		}
		value = buf.Bytes()
		return nil
	})
	return value, err
}

// Write overwrites the record stored under key. value must be JSON.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(value) {
		return fmt.Errorf("write %s: %w", key, ErrNotJSON)
	}
	return s.withLockWrite(func(data *storeData) error {
		data.Records[key] = slices.Clone(value)
		data.Meta.UpdatedAt = s.now().UTC()
		return nil
	})
}

// Delete removes the record stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Records, key)
		return nil
	})
}

// Keys lists the stored keys, sorted.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var keys []string
	err := s.withLock(func(data *storeData) error {
		for k := range data.Records {
			keys = append(keys, k)
		}
		return nil
	})
	slices.Sort(keys)
	return keys, err
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
// A corrupt file is moved to <path>.corrupt and replaced by an empty store.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if errors.Is(err, ErrCorrupt) {
		if err := os.Rename(s.path, s.CorruptPath()); err != nil {
			return fmt.Errorf("move corrupt state file: %w", err)
		}
		data, err = &storeData{Records: make(map[string]json.RawMessage)}, nil
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
	data := &storeData{Records: make(map[string]json.RawMessage)}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if err := json.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if data.Records == nil {
		data.Records = make(map[string]json.RawMessage)
	}

	return data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements StateStore.
var _ domain.StateStore = (*Store)(nil)
