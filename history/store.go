package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Attributes recorded per tool.
const (
	LastPreparedAt  = "last_prepared_at"
	LastSeed        = "last_seed"
	LastStatus      = "last_status"
	LastFailedFiles = "last_failed_files"
	LastDuration    = "last_duration"
)

const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Store is a namespaced key/value store. A Set followed by a Get for the same
// namespace and key observes the new value. Setting nil removes the key.
type Store interface {
	Get(namespace, key string) (any, error)
	Set(namespace, key string, value any) error
}

// Ensure FileStore implements the Store interface
var _ Store = &FileStore{}

type FileStore struct {
	path string

	mu     sync.Mutex
	data   map[string]map[string]any
	loaded bool
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Get(namespace, key string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.loaded {
		data, err := f.read()
		if err != nil {
			return nil, err
		}
		f.data = data
		f.loaded = true
	}

	return f.data[namespace][key], nil
}

// Set re-reads the file under an exclusive lock before writing so concurrent
// rvw processes do not drop each other's entries.
func (f *FileStore) Set(namespace, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	lock := newHistoryLock(f.path)
	if err := lock.acquire(); err != nil {
		return err
	}
	defer func() { _ = lock.release() }()

	data, err := f.read()
	if err != nil {
		return err
	}

	apply(data, namespace, key, value)

	if err := f.write(data); err != nil {
		return err
	}

	f.data = data
	f.loaded = true
	return nil
}

func (f *FileStore) read() (map[string]map[string]any, error) {
	data := make(map[string]map[string]any)

	buf, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(buf, &data); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", f.path, err)
	}
	if data == nil {
		data = make(map[string]map[string]any)
	}

	return data, nil
}

func (f *FileStore) write(data map[string]map[string]any) error {
	buf, err := yaml.Marshal(data)
	if err != nil {
		return err
	}

	// Write to a temp file in the same directory so rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		if errors.Is(err, os.ErrExist) || errors.Is(err, os.ErrPermission) {
			_ = os.Remove(f.path)
			return os.Rename(tmpName, f.path)
		}
		return err
	}

	return nil
}

func apply(data map[string]map[string]any, namespace, key string, value any) {
	if value == nil {
		delete(data[namespace], key)
		if len(data[namespace]) == 0 {
			delete(data, namespace)
		}
		return
	}

	if data[namespace] == nil {
		data[namespace] = make(map[string]any)
	}
	data[namespace][key] = value
}
