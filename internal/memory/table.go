package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

type record interface {
	RecordID() string
}

// table is an ordered in-memory collection guarded by its store's mutex.
type table[T record] struct {
	store    *Store
	name     string
	rows     []T
	withID   func(T, string) T
	clone    func(T) T
	validate func(T) error
}

func (t *table[T]) copyOf(r T) T {
	if t.clone == nil {
		return r
	}
	return t.clone(r)
}

func (t *table[T]) indexOf(id string) int {
	for i, r := range t.rows {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// Fetch returns a snapshot of every row.
func (t *table[T]) Fetch(ctx context.Context) ([]T, error) {
	t.store.mu.RLock()
	if !t.store.attached {
		t.store.mu.RUnlock()
		return nil, types.ErrStoreDetached
	}
	out := make([]T, len(t.rows))
	for i, r := range t.rows {
		out[i] = t.copyOf(r)
	}
	t.store.mu.RUnlock()

	if err := t.store.wait(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the row with the given id.
func (t *table[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, types.ErrInvalidID
	}
	t.store.mu.RLock()
	if !t.store.attached {
		t.store.mu.RUnlock()
		return zero, types.ErrStoreDetached
	}
	i := t.indexOf(id)
	var r T
	if i >= 0 {
		r = t.copyOf(t.rows[i])
	}
	t.store.mu.RUnlock()

	if err := t.store.wait(ctx); err != nil {
		return zero, err
	}
	if i < 0 {
		return zero, types.ErrNotFound
	}
	return r, nil
}

// Set replaces the row with the given id, or appends it when absent. An
// empty id creates a new row under a fresh UUID v7.
func (t *table[T]) Set(ctx context.Context, id string, data T) (string, error) {
	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		id = newID.String()
	}
	data = t.copyOf(t.withID(data, id))
	if err := t.validate(data); err != nil {
		return "", err
	}

	t.store.mu.Lock()
	if !t.store.attached {
		t.store.mu.Unlock()
		return "", types.ErrStoreDetached
	}
	op := "update"
	if i := t.indexOf(id); i >= 0 {
		t.rows[i] = data
	} else {
		op = "create"
		t.rows = append(t.rows, data)
	}
	t.store.mu.Unlock()

	t.store.logger.Debug("record saved", "resource", t.name, "id", id, "op", op)
	if err := t.store.wait(ctx); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes the row with the given id and returns that id.
func (t *table[T]) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", types.ErrInvalidID
	}
	t.store.mu.Lock()
	if !t.store.attached {
		t.store.mu.Unlock()
		return "", types.ErrStoreDetached
	}
	i := t.indexOf(id)
	if i < 0 {
		t.store.mu.Unlock()
		return "", types.ErrNotFound
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	t.store.mu.Unlock()

	t.store.logger.Debug("record deleted", "resource", t.name, "id", id)
	if err := t.store.wait(ctx); err != nil {
		return "", err
	}
	return id, nil
}

// detachedTable is handed out by a detached store; every call fails.
type detachedTable[T any] struct{}

func (detachedTable[T]) Fetch(context.Context) ([]T, error) {
	return nil, types.ErrStoreDetached
}

func (detachedTable[T]) Get(context.Context, string) (T, error) {
	var zero T
	return zero, types.ErrStoreDetached
}

func (detachedTable[T]) Set(context.Context, string, T) (string, error) {
	return "", types.ErrStoreDetached
}

func (detachedTable[T]) Delete(context.Context, string) (string, error) {
	return "", types.ErrStoreDetached
}
