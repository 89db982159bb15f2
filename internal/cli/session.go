package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/nexus/internal/pages"
	"github.com/mesh-intelligence/nexus/internal/render"
	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// session is one mounted table engine bound to its data source. It hides the
// record type so commands can drive any page the same way.
type session interface {
	mount()
	unmount()
	reset()
	load(ctx context.Context) error
	view() viewer
	engine() controls
}

// controls are the engine operations a command can trigger.
type controls interface {
	SetSearch(term string)
	SetFilter(key, value string)
	SetItemsPerPage(n int)
	GoTo(p grid.Pagination, n int) bool
	Next(p grid.Pagination) bool
	Prev(p grid.Pagination) bool
	ToggleSelection(id string)
	ToggleAll(ids []string)
	ClearSelection()
	RunAction() ([]string, error)
	Action() grid.Action
	State() *grid.State
}

// viewer is one derived frame.
type viewer interface {
	pagination() grid.Pagination
	ids() []string
	render(w io.Writer) error
	json() any
}

type tableSession[T grid.Record] struct {
	eng      *grid.Engine[T]
	fetch    func(context.Context) ([]T, error)
	pageSize int
	records  []T
	loading  bool
}

func newSession[T grid.Record](cfg grid.Config[T], fetch func(context.Context) ([]T, error), pageSize int) (*tableSession[T], error) {
	e, err := grid.New(cfg, grid.NewState())
	if err != nil {
		return nil, err
	}
	return &tableSession[T]{eng: e, fetch: fetch, pageSize: pageSize, loading: true}, nil
}

// mount resets the view-state and applies the configured page size.
func (s *tableSession[T]) mount() {
	s.eng.Mount()
	s.eng.SetItemsPerPage(s.pageSize)
}

// reset restores the mounted defaults.
func (s *tableSession[T]) reset() {
	s.eng.Reset()
	s.eng.SetItemsPerPage(s.pageSize)
}

func (s *tableSession[T]) unmount()         { s.eng.Unmount() }
func (s *tableSession[T]) engine() controls { return s.eng }

// load fetches a fresh copy of the records. The session reports loading
// until the first fetch completes.
func (s *tableSession[T]) load(ctx context.Context) error {
	records, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.records = records
	s.loading = false
	return nil
}

func (s *tableSession[T]) view() viewer {
	return tableView[T]{eng: s.eng, v: s.eng.Derive(s.records, s.loading)}
}

type tableView[T grid.Record] struct {
	eng *grid.Engine[T]
	v   grid.View[T]
}

func (t tableView[T]) pagination() grid.Pagination { return t.v.Pagination }
func (t tableView[T]) ids() []string               { return t.v.IDs() }

func (t tableView[T]) render(w io.Writer) error {
	return render.Table(w, t.eng, t.v)
}

// viewJSON is the --json shape of one frame.
type viewJSON[T any] struct {
	Search     string            `json:"search"`
	Filters    map[string]string `json:"filters"`
	Rows       []T               `json:"rows"`
	Pagination grid.Pagination   `json:"pagination"`
	Selection  selectionJSON     `json:"selection"`
}

type selectionJSON struct {
	IDs             []string `json:"ids"`
	Count           int      `json:"count"`
	AllPageSelected bool     `json:"all_page_selected"`
	Indeterminate   bool     `json:"indeterminate"`
}

func (t tableView[T]) json() any {
	state := t.eng.State()
	rows := t.v.Rows
	if rows == nil {
		rows = []T{}
	}
	return viewJSON[T]{
		Search:     state.Search,
		Filters:    state.Filters,
		Rows:       rows,
		Pagination: t.v.Pagination,
		Selection: selectionJSON{
			IDs:             state.Selected(),
			Count:           t.v.Selection.SelectedCount,
			AllPageSelected: t.v.Selection.AllPageSelected,
			Indeterminate:   t.v.Selection.Indeterminate,
		},
	}
}

// openSession builds the session of the named page. Bulk-action notices
// are written to out.
func openSession(ctx context.Context, page string, store types.Store, out io.Writer, pageSize int) (session, error) {
	switch page {
	case pages.Stock:
		return newSession(pages.StockConfig(out), store.Stock().Fetch, pageSize)
	case pages.Sales:
		return newSession(pages.SalesConfig(out), store.Sales().Fetch, pageSize)
	case pages.Crew:
		return newSession(pages.CrewConfig(ctx, store.Crew(), out), store.Crew().Fetch, pageSize)
	default:
		return nil, &usageError{err: fmt.Errorf("page %q (want one of: %s): %w", page, strings.Join(pages.Names, ", "), types.ErrUnknownResource)}
	}
}

// pageSizeList names the offered page sizes, e.g. "5, 10, 20 or 50".
func pageSizeList() string {
	sizes := make([]string, len(grid.PageSizes))
	for i, n := range grid.PageSizes {
		sizes[i] = strconv.Itoa(n)
	}
	if len(sizes) < 2 {
		return strings.Join(sizes, "")
	}
	return strings.Join(sizes[:len(sizes)-1], ", ") + " or " + sizes[len(sizes)-1]
}

// parseFilter splits a key=value filter argument.
func parseFilter(arg string) (string, string, error) {
	key, value, ok := strings.Cut(arg, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", userErrorf("invalid filter %q: want key=value", arg)
	}
	return key, strings.TrimSpace(value), nil
}

// goToPage moves to page n, refusing pages outside the current view. Page 1
// always exists, even when nothing matches.
func goToPage(s session, n int) error {
	p := s.view().pagination()
	if n == 1 && p.TotalPages == 0 {
		return nil
	}
	if !s.engine().GoTo(p, n) {
		return userErrorf("page %d out of range (%d pages)", n, p.TotalPages)
	}
	return nil
}
