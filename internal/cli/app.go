/*
Package cli implements the asset-hub commands.

Each command constructor returns a *cobra.Command wired to a RunE
function; the root command in cmd/asset-hub assembles them. Commands
open the engine through openApp, which locks the data directory,
loads the persisted collections, and opens the query history store.
*/
package cli

import (
	"log"

	"github.com/afmdw/asset-hub/internal/audit"
	"github.com/afmdw/asset-hub/internal/query"
	"github.com/afmdw/asset-hub/internal/repository"
	"github.com/afmdw/asset-hub/internal/store"
)

// DataDir overrides the data directory. Set by the root command's
// --data-dir flag; empty means ~/.asset-hub.
var DataDir string

// app bundles the engine components a command needs.
type app struct {
	store   *store.Store
	repo    *repository.Repository
	reg     *repository.Registry
	history *audit.Store
	engine  *query.Engine
}

// openApp locks the data directory and loads the engine. Callers must
// close the returned app.
func openApp() (*app, error) {
	dir := DataDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	st := store.New(dir)
	if err := st.Lock(); err != nil {
		return nil, err
	}

	repo, err := repository.Load(st)
	if err != nil {
		st.Unlock()
		return nil, err
	}
	reg, err := repository.LoadRegistry(st)
	if err != nil {
		st.Unlock()
		return nil, err
	}

	history := audit.NewStore(dir)
	if err := history.Init(); err != nil {
		// Queries still run; history recording becomes a no-op.
		log.Printf("Warning: query history disabled: %v", err)
	}

	return &app{
		store:   st,
		repo:    repo,
		reg:     reg,
		history: history,
		engine:  query.New(repo, history),
	}, nil
}

func (a *app) close() {
	a.history.Close()
	a.store.Unlock()
}
