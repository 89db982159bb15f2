// This file implements the generic table accessor for the SQLite backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

// table implements types.Table for one entity type. Reads go to SQLite;
// every successful write rewrites the entity's JSONL file atomically.
type table[T record] struct {
	backend  *Backend
	codec    codec[T]
	validate func(T) error
}

func (t *table[T]) selectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(t.codec.columns, ", "), t.codec.table)
}

// Fetch returns every row in insertion order.
func (t *table[T]) Fetch(ctx context.Context) ([]T, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return nil, types.ErrStoreDetached
	}
	return t.fetchLocked(ctx, t.backend.db)
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (t *table[T]) fetchLocked(ctx context.Context, q querier) ([]T, error) {
	rows, err := q.QueryContext(ctx, t.selectSQL()+" ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", t.codec.table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		r, err := t.codec.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", t.codec.table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Get retrieves one row by id.
func (t *table[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return zero, types.ErrStoreDetached
	}
	row := t.backend.db.QueryRowContext(ctx, t.selectSQL()+" WHERE id = ?", id)
	r, err := t.codec.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, types.ErrNotFound
		}
		return zero, fmt.Errorf("getting %s %s: %w", t.codec.table, id, err)
	}
	return r, nil
}

// Set updates the row with the given id, or inserts it when absent. An
// empty id creates a new row under a fresh UUID v7. The JSONL file is
// rewritten before the transaction commits, so a failed write leaves both
// the database and the file unchanged.
func (t *table[T]) Set(ctx context.Context, id string, data T) (string, error) {
	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		id = newID.String()
	}
	data = t.codec.withID(data, id)
	if err := t.validate(data); err != nil {
		return "", err
	}
	args, err := t.codec.args(data)
	if err != nil {
		return "", err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return "", types.ErrStoreDetached
	}

	exists, err := t.existsLocked(ctx, id)
	if err != nil {
		return "", err
	}

	tx, err := t.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if exists {
		sets := make([]string, 0, len(t.codec.columns)-1)
		for _, c := range t.codec.columns[1:] {
			sets = append(sets, c+" = ?")
		}
		stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.codec.table, strings.Join(sets, ", "))
		_, err = tx.ExecContext(ctx, stmt, append(args[1:], id)...)
	} else {
		_, err = insertRow(ctx, tx, t.codec.table, t.codec.columns, args)
	}
	if err != nil {
		return "", fmt.Errorf("persisting %s %s: %w", t.codec.table, id, err)
	}
	if err := t.commitLocked(ctx, tx); err != nil {
		return "", err
	}
	t.backend.logger.Debug("record saved", "resource", t.codec.table, "id", id, "created", !exists)
	return id, nil
}

// Delete removes one row and returns its id.
func (t *table[T]) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return "", types.ErrStoreDetached
	}
	exists, err := t.existsLocked(ctx, id)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", types.ErrNotFound
	}

	tx, err := t.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt := fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.codec.table)
	if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
		return "", fmt.Errorf("deleting %s %s: %w", t.codec.table, id, err)
	}
	if err := t.commitLocked(ctx, tx); err != nil {
		return "", err
	}
	t.backend.logger.Debug("record deleted", "resource", t.codec.table, "id", id)
	return id, nil
}

func (t *table[T]) existsLocked(ctx context.Context, id string) (bool, error) {
	var one int
	stmt := fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", t.codec.table)
	err := t.backend.db.QueryRowContext(ctx, stmt, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", t.codec.table, err)
	}
	return true, nil
}

// commitLocked writes the table as seen by tx to its JSONL file, then commits.
// If the commit fails the file is rewritten from the database again.
func (t *table[T]) commitLocked(ctx context.Context, tx *sql.Tx) error {
	if err := t.persistLocked(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		if perr := t.persistLocked(ctx, t.backend.db); perr != nil {
			t.backend.logger.Error("restoring jsonl after failed commit", "file", t.codec.file, "err", perr)
		}
		return fmt.Errorf("committing %s: %w", t.codec.table, err)
	}
	return nil
}

// persistLocked rewrites the table's JSONL file from q.
func (t *table[T]) persistLocked(ctx context.Context, q querier) error {
	all, err := t.fetchLocked(ctx, q)
	if err != nil {
		return err
	}
	records, err := marshalJSONL(all)
	if err != nil {
		return err
	}
	path := filepath.Join(t.backend.config.DataDir, t.codec.file)
	if err := writeJSONL(path, records); err != nil {
		return fmt.Errorf("persisting %s: %w", t.codec.file, err)
	}
	return nil
}

// insertRow inserts one row with a positional placeholder per column.
func insertRow(ctx context.Context, tx *sql.Tx, table string, columns []string, args []any) (sql.Result, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)
	return tx.ExecContext(ctx, stmt, args...)
}
