package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/afmdw/asset-hub/internal/model"
)

// LoadAssets reads the asset collection. A missing file is first-run and
// yields an empty collection, not an error. A file that exists but
// cannot be parsed yields a *CorruptDataError; callers are expected to
// fall back to an empty collection so the application stays usable.
func (s *Store) LoadAssets() ([]model.Asset, error) {
	path := s.AssetsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Asset{}, nil
		}
		return nil, fmt.Errorf("failed to read assets: %w", err)
	}

	var assets []model.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, &CorruptDataError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Restore from the .bak file if available",
		}
	}
	if assets == nil {
		assets = []model.Asset{}
	}
	return assets, nil
}

// LoadOwners reads the owner registry. Same first-run and corruption
// semantics as LoadAssets.
func (s *Store) LoadOwners() (map[string]model.Owner, error) {
	path := s.OwnersPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]model.Owner{}, nil
		}
		return nil, fmt.Errorf("failed to read owners: %w", err)
	}

	var owners map[string]model.Owner
	if err := json.Unmarshal(data, &owners); err != nil {
		return nil, &CorruptDataError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Restore from the .bak file if available",
		}
	}
	if owners == nil {
		owners = map[string]model.Owner{}
	}
	return owners, nil
}
