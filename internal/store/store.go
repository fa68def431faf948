// Package store persists named record collections as individual JSON files.
//
// The original deployment read and rewrote whole files per request with no
// locking, so two overlapping writers could interleave their load/save pair
// and silently drop a record. Update serializes every read-modify-write
// cycle per collection, and Save goes through a temp file plus rename so a
// crash mid-write cannot leave a partially written file behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt marks a backing file that exists but holds unparseable JSON.
// Handlers surface it as a 500.
var ErrCorrupt = errors.New("store: corrupt collection file")

// Store owns a data directory of <collection>.json files.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

// New creates a Store rooted at dir. The directory is created on first use,
// not here, matching the original behavior of writing lazily.
func New(dir string) *Store {
	return &Store{dir: dir, locks: make(map[string]*sync.RWMutex)}
}

func (s *Store) lockFor(name string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[name] = l
	}
	return l
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load decodes the collection into out. A missing file is not an error: out
// keeps whatever empty value the caller initialized it with.
func (s *Store) Load(name string, out interface{}) error {
	l := s.lockFor(name)
	l.RLock()
	defer l.RUnlock()
	return s.read(name, out)
}

func (s *Store) read(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
	}
	return nil
}

// Save writes the collection atomically: marshal, write a temp file in the
// same directory, fsync, rename over the target.
func (s *Store) Save(name string, v interface{}) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()
	return s.write(name, v)
}

func (s *Store) write(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Two-space indent keeps the files diffable against what the previous
	// deployment wrote.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", name, err)
	}

	target := s.path(name)
	tmp := target + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write temp file for %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync temp file for %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename temp file for %s: %w", name, err)
	}
	return nil
}

// Update runs fn while holding the collection's writer lock. The load and
// save closures passed to fn operate without re-acquiring it, so a full
// load-modify-save cycle is one serialized unit.
func (s *Store) Update(name string, fn func(load func(out interface{}) error, save func(v interface{}) error) error) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	load := func(out interface{}) error { return s.read(name, out) }
	save := func(v interface{}) error { return s.write(name, v) }
	return fn(load, save)
}
