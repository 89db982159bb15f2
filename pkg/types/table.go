package types

import (
	"context"
	"errors"
)

// Table provides uniform CRUD operations for a single entity type.
// Every call blocks for the backend round-trip and honours ctx.
type Table[T any] interface {
	// Fetch returns every entity in insertion order.
	Fetch(ctx context.Context) ([]T, error)

	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(ctx context.Context, id string) (T, error)

	// Set creates or updates an entity. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Set(ctx context.Context, id string, data T) (string, error)

	// Delete removes the entity with the given ID and returns that ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(ctx context.Context, id string) (string, error)
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
)
