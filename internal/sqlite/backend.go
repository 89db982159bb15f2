// Package sqlite implements the SQLite storage backend for nexus.
//
// JSONL files in the data directory are the source of truth. On Attach the
// database is recreated, its schema applied, and every JSONL file loaded;
// each write then updates the database and rewrites the affected file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/nexus/internal/schema"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// dbFile is the database file created inside the data directory.
const dbFile = "nexus.db"

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite as the query engine and JSONL
// files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *slog.Logger

	stock *table[types.StockItem]
	sales *table[types.SaleRecord]
	crew  *table[types.CrewMember]
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for load, mutation and lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) { b.logger = l }
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, seeds missing JSONL files, rebuilds
// the database and loads every JSONL file into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if config.DataDir == "" {
		config.DataDir = "."
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := seedJSONL(config.DataDir); err != nil {
		return err
	}

	v, err := schema.New()
	if err != nil {
		return err
	}

	// The database is a cache of the JSONL files; start from scratch.
	dbPath := filepath.Join(config.DataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.stock = &table[types.StockItem]{backend: b, codec: stockCodec, validate: v.Stock}
	b.sales = &table[types.SaleRecord]{backend: b, codec: salesCodec, validate: v.Sale}
	b.crew = &table[types.CrewMember]{backend: b, codec: crewCodec, validate: v.Crew}

	if err := b.loadAllJSONL(context.Background()); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.attached = true
	b.logger.Debug("sqlite backend attached", "data_dir", config.DataDir)
	return nil
}

// Detach closes the database. Idempotent. After Detach, all operations
// return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.logger.Debug("sqlite backend detached")
	return nil
}

// Stock returns the inventory table.
func (b *Backend) Stock() types.Table[types.StockItem] {
	return b.stockTable()
}

// Sales returns the orders table.
func (b *Backend) Sales() types.Table[types.SaleRecord] {
	return b.salesTable()
}

// Crew returns the employees table.
func (b *Backend) Crew() types.Table[types.CrewMember] {
	return b.crewTable()
}

// The accessors below always hand out a usable table value; tables check
// attachment on every call.
func (b *Backend) stockTable() *table[types.StockItem] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stock == nil {
		return &table[types.StockItem]{backend: b, codec: stockCodec, validate: detached[types.StockItem]}
	}
	return b.stock
}

func (b *Backend) salesTable() *table[types.SaleRecord] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.sales == nil {
		return &table[types.SaleRecord]{backend: b, codec: salesCodec, validate: detached[types.SaleRecord]}
	}
	return b.sales
}

func (b *Backend) crewTable() *table[types.CrewMember] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.crew == nil {
		return &table[types.CrewMember]{backend: b, codec: crewCodec, validate: detached[types.CrewMember]}
	}
	return b.crew
}

// detached rejects writes on tables handed out before Attach.
func detached[T any](T) error { return types.ErrStoreDetached }

// Stats aggregates the headline figures. Revenue sums completed sales,
// active orders counts pending sales, and low stock alerts counts the lines
// whose Reorder is true.
func (b *Backend) Stats(ctx context.Context) (types.DashboardStats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var stats types.DashboardStats
	if !b.attached {
		return stats, types.ErrStoreDetached
	}

	rows, err := b.db.QueryContext(ctx, "SELECT total_amount FROM sales WHERE status = ?", types.SaleCompleted)
	if err != nil {
		return stats, fmt.Errorf("querying revenue: %w", err)
	}
	defer rows.Close()
	stats.TotalRevenue = decimal.Zero
	for rows.Next() {
		var amount string
		if err := rows.Scan(&amount); err != nil {
			return stats, fmt.Errorf("scanning revenue: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return stats, fmt.Errorf("parsing sale total %q: %w", amount, err)
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(d)
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	counts := []struct {
		dst   *int
		query string
		args  []any
	}{
		{&stats.ActiveOrders, "SELECT COUNT(*) FROM sales WHERE status = ?", []any{types.SalePending}},
		{&stats.TotalCrew, "SELECT COUNT(*) FROM crew", nil},
	}
	for _, c := range counts {
		if err := b.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return stats, fmt.Errorf("aggregating stats: %w", err)
		}
	}

	stock, err := b.stock.fetchLocked(ctx, b.db)
	if err != nil {
		return stats, err
	}
	for _, item := range stock {
		if item.Reorder() {
			stats.LowStockAlerts++
		}
	}
	return stats, nil
}
