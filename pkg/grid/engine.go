package grid

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Engine derives the visible slice of a table from raw records and its State,
// and applies the state transitions triggered by the user.
type Engine[T Record] struct {
	cfg      Config[T]
	state    *State
	filterBy map[string]Accessor[T]
}

// New binds cfg to state. A nil state is replaced by a fresh one. A nil
// cfg.Action is treated as NoAction.
func New[T Record](cfg Config[T], state *State) (*Engine[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Action == nil {
		cfg.Action = NoAction()
	}
	if state == nil {
		state = NewState()
	}
	filterBy := make(map[string]Accessor[T], len(cfg.Filters))
	for _, f := range cfg.Filters {
		filterBy[f.Key] = f.Value
	}
	return &Engine[T]{cfg: cfg, state: state, filterBy: filterBy}, nil
}

// Config returns the engine's table description.
func (e *Engine[T]) Config() Config[T] {
	return e.cfg
}

// State returns the engine's view-state.
func (e *Engine[T]) State() *State {
	return e.state
}

// Action returns the bulk-action capability.
func (e *Engine[T]) Action() Action {
	return e.cfg.Action
}

// Mount prepares the engine for a newly displayed table.
func (e *Engine[T]) Mount() {
	e.state.Reset()
}

// Unmount discards the view-state of a table that is no longer displayed.
func (e *Engine[T]) Unmount() {
	e.state.Reset()
}

// SetSearch replaces the search text and returns to the first page.
func (e *Engine[T]) SetSearch(term string) {
	e.state.Search = term
	e.state.Page = 1
}

// SetFilter sets the value of filter key and returns to the first page.
// FilterAll clears the constraint. Keys that match no configured filter are
// stored but never constrain the result.
func (e *Engine[T]) SetFilter(key, value string) {
	if e.state.Filters == nil {
		e.state.Filters = map[string]string{}
	}
	e.state.Filters[key] = value
	e.state.Page = 1
}

// SetItemsPerPage changes the page size and returns to the first page.
// Non-positive sizes are ignored.
func (e *Engine[T]) SetItemsPerPage(n int) {
	if n <= 0 {
		return
	}
	e.state.ItemsPerPage = n
	e.state.Page = 1
}

// SetPage moves to page n without checking it exists; callers guard with
// Pagination.Contains or use GoTo, Next and Prev.
func (e *Engine[T]) SetPage(n int) {
	e.state.Page = n
}

// GoTo moves to page n if it exists in p and reports whether it moved.
func (e *Engine[T]) GoTo(p Pagination, n int) bool {
	if !p.Contains(n) {
		return false
	}
	e.SetPage(n)
	return true
}

// Next moves one page forward if possible.
func (e *Engine[T]) Next(p Pagination) bool {
	return e.GoTo(p, p.Page+1)
}

// Prev moves one page back if possible.
func (e *Engine[T]) Prev(p Pagination) bool {
	return e.GoTo(p, p.Page-1)
}

// ToggleSelection flips the membership of id in the selection set.
func (e *Engine[T]) ToggleSelection(id string) {
	if e.state.selected.has(id) {
		e.state.selected.remove(id)
		return
	}
	e.state.selected.add(id)
}

// ToggleAll deselects every id when all of them are selected and selects
// every id otherwise. Callers pass the ids of the visible page, so select-all
// is page scoped.
func (e *Engine[T]) ToggleAll(ids []string) {
	all := true
	for _, id := range ids {
		if !e.state.selected.has(id) {
			all = false
			break
		}
	}
	for _, id := range ids {
		if all {
			e.state.selected.remove(id)
		} else {
			e.state.selected.add(id)
		}
	}
}

// ClearSelection empties the selection set.
func (e *Engine[T]) ClearSelection() {
	e.state.selected = selection{}
}

// Reset restores the default view-state.
func (e *Engine[T]) Reset() {
	e.state.Reset()
}

// RunAction invokes the bulk action once with the current selection and then
// clears the selection, whether or not the action succeeded. It returns the
// ids handed to the action.
func (e *Engine[T]) RunAction() ([]string, error) {
	if !e.cfg.Action.Available() {
		return nil, ErrNoAction
	}
	ids := e.state.Selected()
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	err := e.cfg.Action.Run(ids)
	e.ClearSelection()
	return ids, err
}

// Headers returns the column headers in display order.
func (e *Engine[T]) Headers() []string {
	headers := make([]string, len(e.cfg.Columns))
	for i, c := range e.cfg.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Cells renders every column of row.
func (e *Engine[T]) Cells(row T) []string {
	cells := make([]string, len(e.cfg.Columns))
	for i, c := range e.cfg.Columns {
		cells[i] = c.Cell(row)
	}
	return cells
}

// Derive computes the view of records under the current state: search, then
// filters, then the page window. While loading it returns a loading view
// without touching records.
func (e *Engine[T]) Derive(records []T, loading bool) View[T] {
	s := e.state
	if loading {
		return View[T]{
			Loading:    true,
			Pagination: Pagination{Page: s.Page, ItemsPerPage: s.ItemsPerPage},
			Selection:  SelectionSummary{SelectedCount: s.selected.len()},
		}
	}

	filtered := e.Filter(records)

	p := Pagination{
		Page:          s.Page,
		ItemsPerPage:  s.ItemsPerPage,
		TotalFiltered: len(filtered),
		TotalPages:    totalPages(len(filtered), s.ItemsPerPage),
	}

	var rows []T
	if p.Contains(s.Page) {
		start := (s.Page - 1) * s.ItemsPerPage
		end := start + min(s.ItemsPerPage, len(filtered)-start)
		rows = filtered[start:end]
		p.RangeStart = start + 1
		p.RangeEnd = end
	}

	v := View[T]{Rows: rows, Pagination: p}
	v.Selection = e.summarize(rows)
	return v
}

// Filter applies the search and filter stages to records and returns the
// surviving records in their original order.
func (e *Engine[T]) Filter(records []T) []T {
	s := e.state
	lower := cases.Lower(language.Und)

	var needle string
	search := s.Search != "" && len(e.cfg.SearchKeys) > 0
	if search {
		needle = lower.String(s.Search)
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if search && !e.matchesSearch(r, needle, lower) {
			continue
		}
		if !e.matchesFilters(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (e *Engine[T]) matchesSearch(r T, needle string, lower cases.Caser) bool {
	for _, k := range e.cfg.SearchKeys {
		if strings.Contains(lower.String(k.Value(r)), needle) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) matchesFilters(r T) bool {
	for key, want := range e.state.Filters {
		if want == "" || want == FilterAll {
			continue
		}
		get, ok := e.filterBy[key]
		if !ok {
			continue
		}
		if get(r) != want {
			return false
		}
	}
	return true
}

func (e *Engine[T]) summarize(rows []T) SelectionSummary {
	sum := SelectionSummary{SelectedCount: e.state.selected.len()}
	if len(rows) == 0 {
		return sum
	}
	selected := 0
	for _, r := range rows {
		if e.state.selected.has(r.RecordID()) {
			selected++
		}
	}
	sum.AllPageSelected = selected == len(rows)
	sum.Indeterminate = selected > 0 && !sum.AllPageSelected
	return sum
}
