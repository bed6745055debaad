package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store is the durable key-value storage behind a Context. It plays
// the role browser local storage plays for the site: small string
// values that survive restarts.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemStore is an in-memory Store for tests and for running without a
// preferences file.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// FileStore persists values as a flat JSON object on disk. A missing
// or unreadable file reads as empty, so a corrupt preferences file
// only costs the visitor their saved language, never a startup.
type FileStore struct {
	mu   sync.Mutex
	path string
	m    map[string]string
}

// NewFileStore loads the file at path if it exists.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, m: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.m); err != nil {
		s.m = make(map[string]string)
	}
	return s
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value

	data, err := json.MarshalIndent(s.m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}
