// Package store persists raw fetch artifacts and the status index on disk.
//
// Layout:
//
//	<root>/<crate>/meta.json
//	<root>/<crate>/versions.json
//	<root>/<crate>/readme.md
//	<root>/index.json
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/git-pkgs/cratedocs/internal/core"
)

// Store reads and writes artifacts under a root directory.
type Store struct {
	root string
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Root returns the artifact root directory.
func (s *Store) Root() string {
	return s.root
}

// WriteArtifact writes one raw artifact for a crate.
func (s *Store) WriteArtifact(crate, file string, data []byte) error {
	dir := filepath.Join(s.root, crate)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating crate dir: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, file), data, 0o644)
}

// ReadArtifact reads one raw artifact. A missing artifact returns
// os.ErrNotExist, which callers treat as "not fetched", not a failure.
func (s *Store) ReadArtifact(crate, file string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, crate, file))
}

// HasArtifact reports whether an artifact exists on disk.
func (s *Store) HasArtifact(crate, file string) bool {
	_, err := os.Stat(filepath.Join(s.root, crate, file))
	return err == nil
}

// WriteIndex writes the consolidated status index.
func (s *Store) WriteIndex(idx *core.Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(s.root, core.IndexFile), data, 0o644)
}

// ReadIndex reads the consolidated status index.
func (s *Store) ReadIndex() (*core.Index, error) {
	data, err := os.ReadFile(filepath.Join(s.root, core.IndexFile))
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	idx := core.NewIndex()
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	return idx, nil
}
