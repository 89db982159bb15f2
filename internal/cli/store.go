package cli

import (
	"fmt"

	"github.com/mesh-intelligence/nexus/internal/memory"
	"github.com/mesh-intelligence/nexus/internal/sqlite"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// openStore creates the configured backend and attaches it. The caller must
// Detach the returned store.
func (a *app) openStore() (types.Store, error) {
	var store types.Store
	switch a.settings.backend {
	case types.BackendMemory:
		store = memory.NewStore(memory.WithLogger(a.logger))
	case types.BackendSQLite:
		store = sqlite.NewBackend(sqlite.WithLogger(a.logger))
	default:
		return nil, fmt.Errorf("backend %q: %w", a.settings.backend, types.ErrBackendUnknown)
	}
	if err := store.Attach(a.settings.storeConfig()); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", a.settings.backend, err)
	}
	return store, nil
}

// withStore runs fn against an attached store and always detaches it.
func (a *app) withStore(fn func(types.Store) error) (err error) {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if derr := store.Detach(); derr != nil && err == nil {
			err = fmt.Errorf("detach: %w", derr)
		}
	}()
	return fn(store)
}
