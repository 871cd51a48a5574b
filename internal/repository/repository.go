/*
Package repository owns the in-memory asset collection and owner
registry.

All mutations go through the Repository and Registry types. Each
successful mutation persists the full collection synchronously before
returning; a failed save rolls the in-memory state back, so memory and
disk never diverge on a reported success.
*/
package repository

import (
	"errors"
	"log"
	"strings"

	"github.com/afmdw/asset-hub/internal/model"
	"github.com/afmdw/asset-hub/internal/store"
)

// Persister is the durable store the repository saves through.
type Persister interface {
	LoadAssets() ([]model.Asset, error)
	SaveAssets([]model.Asset) error
	LoadOwners() (map[string]model.Owner, error)
	SaveOwners(map[string]model.Owner) error
}

// Repository is the single source of truth for the asset collection.
// Assets keep their insertion order; the repository never re-sorts.
type Repository struct {
	store  Persister
	assets []model.Asset
}

// Load builds a Repository from the persisted collection. A corrupt
// data file is logged and degrades to an empty collection so the
// application stays usable.
func Load(p Persister) (*Repository, error) {
	assets, err := p.LoadAssets()
	if err != nil {
		var corrupt *store.CorruptDataError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		log.Printf("Warning: %v", corrupt)
		assets = []model.Asset{}
	}
	return &Repository{store: p, assets: assets}, nil
}

// Create adds a new asset. The ID and name are required; the ID must
// not already exist.
func (r *Repository) Create(asset model.Asset) (model.Asset, error) {
	if strings.TrimSpace(asset.ID) == "" {
		return model.Asset{}, &ValidationError{Field: "id", Message: "asset ID is required"}
	}
	if strings.TrimSpace(asset.Name) == "" {
		return model.Asset{}, &ValidationError{Field: "name", Message: "asset name is required"}
	}
	for _, a := range r.assets {
		if a.ID == asset.ID {
			return model.Asset{}, &DuplicateIDError{ID: asset.ID}
		}
	}

	prev := r.assets
	r.assets = append(r.snapshot(), asset)
	if err := r.store.SaveAssets(r.assets); err != nil {
		r.assets = prev
		return model.Asset{}, err
	}
	return asset, nil
}

// Update replaces every field of the asset except its ID, which is
// immutable once created.
func (r *Repository) Update(id string, patch model.Asset) (model.Asset, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return model.Asset{}, &NotFoundError{Kind: "asset", Key: id}
	}

	updated := patch
	updated.ID = id

	prev := r.assets
	next := r.snapshot()
	next[idx] = updated
	r.assets = next
	if err := r.store.SaveAssets(r.assets); err != nil {
		r.assets = prev
		return model.Asset{}, err
	}
	return updated, nil
}

// Delete removes the asset and returns the removed record so callers
// can confirm what was deleted.
func (r *Repository) Delete(id string) (model.Asset, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return model.Asset{}, &NotFoundError{Kind: "asset", Key: id}
	}

	removed := r.assets[idx]
	prev := r.assets
	next := r.snapshot()
	r.assets = append(next[:idx], next[idx+1:]...)
	if err := r.store.SaveAssets(r.assets); err != nil {
		r.assets = prev
		return model.Asset{}, err
	}
	return removed, nil
}

// List returns a snapshot of the collection in insertion order.
func (r *Repository) List() []model.Asset {
	return r.snapshot()
}

// FindByID returns the asset with the given ID, if present.
func (r *Repository) FindByID(id string) (model.Asset, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return model.Asset{}, false
	}
	return r.assets[idx], true
}

// Count returns the number of assets in the collection.
func (r *Repository) Count() int { return len(r.assets) }

// Replace swaps in a full collection and persists it. Bundle import
// uses this; the usual rollback contract applies.
func (r *Repository) Replace(assets []model.Asset) error {
	prev := r.assets
	r.assets = append([]model.Asset{}, assets...)
	if err := r.store.SaveAssets(r.assets); err != nil {
		r.assets = prev
		return err
	}
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i, a := range r.assets {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) snapshot() []model.Asset {
	out := make([]model.Asset, len(r.assets))
	copy(out, r.assets)
	return out
}
