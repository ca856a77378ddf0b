// Package prefs persists small key/value settings such as developer toggles.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/manjunathc23/zeta/pkg/errors"
)

// Store is a typed key/value settings store.
type Store interface {
	Bool(key string, def bool) bool
	String(key, def string) string
	Int(key string, def int) int
	SetBool(key string, value bool)
	SetString(key, value string)
	SetInt(key string, value int)
	// Keys returns the stored keys in no particular order.
	Keys() []string
	// Save persists pending changes.
	Save() error
}

// FileStore is a Store backed by a YAML document on disk.
// Values are kept as strings, so a key written with SetInt can be read with
// String.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.New("prefs.Open", errors.KindStorage, fmt.Errorf("failed to read %s: %w", path, err))
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, errors.New("prefs.Open", errors.KindStorage, fmt.Errorf("failed to parse %s: %w", path, err))
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Bool returns the value at key parsed as a bool, or def when it is missing
// or unparsable.
func (s *FileStore) Bool(key string, def bool) bool {
	v, ok := s.get(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// String returns the raw value at key, or def when it is missing.
func (s *FileStore) String(key, def string) string {
	if v, ok := s.get(key); ok {
		return v
	}
	return def
}

// Int returns the value at key parsed as an int, or def when it is missing
// or unparsable.
func (s *FileStore) Int(key string, def int) int {
	v, ok := s.get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// SetBool stores value at key. Call Save to persist it.
func (s *FileStore) SetBool(key string, value bool) {
	s.set(key, strconv.FormatBool(value))
}

// SetString stores value at key. Call Save to persist it.
func (s *FileStore) SetString(key, value string) {
	s.set(key, value)
}

// SetInt stores value at key. Call Save to persist it.
func (s *FileStore) SetInt(key string, value int) {
	s.set(key, strconv.Itoa(value))
}

// Keys returns the stored keys in no particular order.
func (s *FileStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Save writes the store atomically: the document is written to a temporary
// file in the same directory and renamed over the target.
func (s *FileStore) Save() error {
	s.mu.Lock()
	data, err := yaml.Marshal(s.values)
	s.mu.Unlock()
	if err != nil {
		return errors.New("prefs.Save", errors.KindStorage, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New("prefs.Save", errors.KindStorage, fmt.Errorf("failed to create directory %s: %w", dir, err))
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return errors.New("prefs.Save", errors.KindStorage, fmt.Errorf("failed to create temp file: %w", err))
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.New("prefs.Save", errors.KindStorage, fmt.Errorf("failed to write prefs: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return errors.New("prefs.Save", errors.KindStorage, fmt.Errorf("failed to close temp file: %w", err))
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.New("prefs.Save", errors.KindStorage, fmt.Errorf("failed to rename temp file: %w", err))
	}

	success = true
	return nil
}
