/*
Package store persists the asset collection and owner registry as JSON
documents in the data directory.

Both files are whole-collection snapshots: every save rewrites the full
document. Writes are atomic: the previous file is backed up to .bak,
the new content goes to a .tmp file in the same directory, and the temp
file is renamed into place, so a crash mid-write never leaves a
half-written collection behind.
*/
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	assetsFile = "assets.json"
	ownersFile = "owners.json"
)

// Store reads and writes the persisted collections under a single data
// directory.
type Store struct {
	dir      string
	lockFile *os.File
}

// New creates a store rooted at dir. The directory is created on first
// write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store operates on.
func (s *Store) Dir() string { return s.dir }

// AssetsPath returns the path of the asset collection file.
func (s *Store) AssetsPath() string { return filepath.Join(s.dir, assetsFile) }

// OwnersPath returns the path of the owner registry file.
func (s *Store) OwnersPath() string { return filepath.Join(s.dir, ownersFile) }

// DefaultDir returns the default data directory, ~/.asset-hub.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".asset-hub"), nil
}
