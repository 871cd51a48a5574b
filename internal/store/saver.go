package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/afmdw/asset-hub/internal/model"
)

// SaveAssets writes the full asset collection with atomic write + backup.
func (s *Store) SaveAssets(assets []model.Asset) error {
	if assets == nil {
		assets = []model.Asset{}
	}
	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal assets: %w", err)
	}
	return s.write(s.AssetsPath(), data)
}

// SaveOwners writes the full owner registry with atomic write + backup.
func (s *Store) SaveOwners(owners map[string]model.Owner) error {
	if owners == nil {
		owners = map[string]model.Owner{}
	}
	data, err := json.MarshalIndent(owners, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal owners: %w", err)
	}
	return s.write(s.OwnersPath(), data)
}

func (s *Store) write(path string, data []byte) error {
	// Backup the previous snapshot before overwriting it.
	if err := backupFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create backup: %v\n", err)
	}
	return atomicWrite(path, data)
}

func backupFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // First run, no backup needed
		}
		return err
	}

	bakPath := path + ".bak"
	return os.WriteFile(bakPath, data, 0644)
}

func atomicWrite(path string, data []byte) error {
	// Write to temp file in same directory
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, path)
}
