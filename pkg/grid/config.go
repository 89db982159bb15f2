package grid

import (
	"errors"
	"fmt"
)

// Record is a row the engine can display. RecordID must be unique within a
// dataset; it is the identity stored in the selection set.
type Record interface {
	RecordID() string
}

// Accessor returns the textual representation of one field of a record.
type Accessor[T any] func(T) string

// Column describes one rendered column. Render takes precedence over Value;
// a column with neither renders an empty cell.
type Column[T any] struct {
	Header string
	Key    string
	Value  Accessor[T]
	Render func(T) string
}

// Cell renders the column for row.
func (c Column[T]) Cell(row T) string {
	switch {
	case c.Render != nil:
		return c.Render(row)
	case c.Value != nil:
		return c.Value(row)
	default:
		return ""
	}
}

// SearchKey names a field that free-text search matches against.
type SearchKey[T any] struct {
	Key   string
	Value Accessor[T]
}

// Option is one selectable value of a Filter.
type Option struct {
	Label string
	Value string
}

// Filter is an exact-match dropdown over one field.
type Filter[T any] struct {
	Key     string
	Label   string
	Options []Option
	Value   Accessor[T]
}

// Config is the static description of a table: its columns, the fields that
// search matches, the filters offered and the bulk action, if any.
type Config[T Record] struct {
	Columns           []Column[T]
	SearchKeys        []SearchKey[T]
	Filters           []Filter[T]
	Action            Action
	SearchPlaceholder string
}

// Configuration errors returned by New.
var (
	ErrNilAccessor     = errors.New("accessor must not be nil")
	ErrDuplicateFilter = errors.New("duplicate filter key")
	ErrEmptyKey        = errors.New("key must not be empty")
)

func (c Config[T]) validate() error {
	for _, k := range c.SearchKeys {
		if k.Key == "" {
			return fmt.Errorf("search key: %w", ErrEmptyKey)
		}
		if k.Value == nil {
			return fmt.Errorf("search key %q: %w", k.Key, ErrNilAccessor)
		}
	}
	seen := make(map[string]bool, len(c.Filters))
	for _, f := range c.Filters {
		if f.Key == "" {
			return fmt.Errorf("filter: %w", ErrEmptyKey)
		}
		if f.Value == nil {
			return fmt.Errorf("filter %q: %w", f.Key, ErrNilAccessor)
		}
		if seen[f.Key] {
			return fmt.Errorf("filter %q: %w", f.Key, ErrDuplicateFilter)
		}
		seen[f.Key] = true
	}
	return nil
}
