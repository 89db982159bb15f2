// This file implements JSONL loading on Attach.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// loadAllJSONL reads each resource's JSONL file from the data directory and
// inserts its records. Loading is transactional: all succeed or the database
// remains empty.
func (b *Backend) loadAllJSONL(ctx context.Context) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if err := loadTable(ctx, b, tx, b.stock); err != nil {
		return err
	}
	if err := loadTable(ctx, b, tx, b.sales); err != nil {
		return err
	}
	if err := loadTable(ctx, b, tx, b.crew); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// loadTable inserts the records of one JSONL file. Records that do not decode,
// fail validation or violate a constraint are skipped with a warning so one
// bad line never blocks startup.
func loadTable[T record](ctx context.Context, b *Backend, tx *sql.Tx, t *table[T]) error {
	path := filepath.Join(b.config.DataDir, t.codec.file)
	records, err := readJSONL(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", t.codec.file, err)
	}

	loaded := 0
	for i, raw := range records {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			b.logger.Warn("skipping undecodable record", "file", t.codec.file, "line", i+1, "err", err)
			continue
		}
		if err := t.validate(rec); err != nil {
			b.logger.Warn("skipping invalid record", "file", t.codec.file, "line", i+1, "err", err)
			continue
		}
		args, err := t.codec.args(rec)
		if err != nil {
			return err
		}
		if _, err := insertRow(ctx, tx, t.codec.table, t.codec.columns, args); err != nil {
			b.logger.Warn("skipping conflicting record", "file", t.codec.file, "line", i+1, "err", err)
			continue
		}
		loaded++
	}
	b.logger.Debug("loaded jsonl", "file", t.codec.file, "records", loaded)
	return nil
}
