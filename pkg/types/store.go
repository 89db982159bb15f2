package types

import (
	"context"
	"errors"
)

// Resource names accepted by the CLI and used as JSONL file stems.
const (
	ResourceStock = "stock"
	ResourceSales = "sales"
	ResourceCrew  = "crew"
)

// Resources lists the tabular resources in navigation order.
var Resources = []string{ResourceStock, ResourceSales, ResourceCrew}

// Store is the data service behind the dashboard. Callers attach to a
// backend, use its tables, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, table operations return ErrStoreDetached.
	Detach() error

	Stock() Table[StockItem]
	Sales() Table[SaleRecord]
	Crew() Table[CrewMember]

	// Stats returns the dashboard headline figures.
	Stats(ctx context.Context) (DashboardStats, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrUnknownResource = errors.New("unknown resource")
)
