// Package memory implements the in-process mock data service. It serves the
// sample fixture, hands out copies on every fetch, and simulates a network
// round-trip by sleeping for the configured latency before each call returns.
package memory

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/mesh-intelligence/nexus/internal/fixtures"
	"github.com/mesh-intelligence/nexus/internal/schema"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// Store is the memory backend. The zero value is not usable; call NewStore.
type Store struct {
	mu       sync.RWMutex
	attached bool
	latency  time.Duration
	logger   *slog.Logger
	validate *schema.Validator

	stock *table[types.StockItem]
	sales *table[types.SaleRecord]
	crew  *table[types.CrewMember]
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation and lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a detached memory store. Call Attach before use.
func NewStore(opts ...Option) *Store {
	s := &Store{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach seeds the store from the fixture and applies config.Latency.
// DataDir is ignored.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	v, err := schema.New()
	if err != nil {
		return err
	}

	s.validate = v
	s.latency = config.Latency
	s.stock = &table[types.StockItem]{
		store:    s,
		name:     types.ResourceStock,
		rows:     fixtures.Stock(),
		withID:   func(r types.StockItem, id string) types.StockItem { r.ID = id; return r },
		validate: v.Stock,
	}
	s.sales = &table[types.SaleRecord]{
		store:    s,
		name:     types.ResourceSales,
		rows:     fixtures.Sales(),
		withID:   func(r types.SaleRecord, id string) types.SaleRecord { r.ID = id; return r },
		clone:    func(r types.SaleRecord) types.SaleRecord { r.Items = slices.Clone(r.Items); return r },
		validate: v.Sale,
	}
	s.crew = &table[types.CrewMember]{
		store:    s,
		name:     types.ResourceCrew,
		rows:     fixtures.Crew(),
		withID:   func(r types.CrewMember, id string) types.CrewMember { r.ID = id; return r },
		validate: v.Crew,
	}
	s.attached = true
	s.logger.Debug("memory store attached", "latency", s.latency)
	return nil
}

// Detach drops all data. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	s.attached = false
	s.stock, s.sales, s.crew = nil, nil, nil
	s.logger.Debug("memory store detached")
	return nil
}

// Stock returns the inventory table.
func (s *Store) Stock() types.Table[types.StockItem] {
	return tableOrDetached(s, func() *table[types.StockItem] { return s.stock })
}

// Sales returns the orders table.
func (s *Store) Sales() types.Table[types.SaleRecord] {
	return tableOrDetached(s, func() *table[types.SaleRecord] { return s.sales })
}

// Crew returns the employees table.
func (s *Store) Crew() types.Table[types.CrewMember] {
	return tableOrDetached(s, func() *table[types.CrewMember] { return s.crew })
}

// Stats returns the fixed mock headline figures.
func (s *Store) Stats(ctx context.Context) (types.DashboardStats, error) {
	s.mu.RLock()
	attached := s.attached
	s.mu.RUnlock()
	if !attached {
		return types.DashboardStats{}, types.ErrStoreDetached
	}
	if err := s.wait(ctx); err != nil {
		return types.DashboardStats{}, err
	}
	return fixtures.Stats(), nil
}

// wait simulates the service round-trip.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func tableOrDetached[T record](s *Store, get func() *table[T]) types.Table[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return detachedTable[T]{}
	}
	return get()
}
