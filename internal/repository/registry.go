package repository

import (
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/afmdw/asset-hub/internal/model"
	"github.com/afmdw/asset-hub/internal/store"
)

// Registry tracks the named owners assets can be assigned to. The owner
// reference on an asset is by name only: removing an owner does not
// touch assets that still carry the name.
type Registry struct {
	store  Persister
	owners map[string]model.Owner
	now    func() time.Time
}

// LoadRegistry builds a Registry from the persisted owner file, with
// the same corrupt-file fallback as Load.
func LoadRegistry(p Persister) (*Registry, error) {
	owners, err := p.LoadOwners()
	if err != nil {
		var corrupt *store.CorruptDataError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		log.Printf("Warning: %v", corrupt)
		owners = map[string]model.Owner{}
	}
	return &Registry{store: p, owners: owners, now: time.Now}, nil
}

// Add registers a new owner. The name is trimmed; blank and duplicate
// names are rejected.
func (g *Registry) Add(name string) (model.Owner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Owner{}, &ValidationError{Field: "owner", Message: "owner name is required"}
	}
	if _, exists := g.owners[name]; exists {
		return model.Owner{}, &DuplicateOwnerError{Name: name}
	}

	owner := model.Owner{CreatedDate: g.now().Format(model.TimestampLayout)}
	g.owners[name] = owner
	if err := g.store.SaveOwners(g.owners); err != nil {
		delete(g.owners, name)
		return model.Owner{}, err
	}
	return owner, nil
}

// Remove deletes an owner from the registry and returns the removed
// record. Assets assigned to the owner are left as-is.
func (g *Registry) Remove(name string) (model.Owner, error) {
	name = strings.TrimSpace(name)
	owner, exists := g.owners[name]
	if !exists {
		return model.Owner{}, &NotFoundError{Kind: "owner", Key: name}
	}

	delete(g.owners, name)
	if err := g.store.SaveOwners(g.owners); err != nil {
		g.owners[name] = owner
		return model.Owner{}, err
	}
	return owner, nil
}

// Get returns the owner record for a name, if present.
func (g *Registry) Get(name string) (model.Owner, bool) {
	owner, ok := g.owners[name]
	return owner, ok
}

// Names returns the registered owner names, sorted, for populating
// selection controls.
func (g *Registry) Names() []string {
	names := make([]string, 0, len(g.owners))
	for name := range g.owners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the full registry, for bundle export.
func (g *Registry) All() map[string]model.Owner {
	out := make(map[string]model.Owner, len(g.owners))
	for name, owner := range g.owners {
		out[name] = owner
	}
	return out
}

// Replace swaps in a full registry and persists it. Bundle import uses
// this; the usual rollback contract applies.
func (g *Registry) Replace(owners map[string]model.Owner) error {
	prev := g.owners
	next := make(map[string]model.Owner, len(owners))
	for name, owner := range owners {
		next[name] = owner
	}
	g.owners = next
	if err := g.store.SaveOwners(g.owners); err != nil {
		g.owners = prev
		return err
	}
	return nil
}
