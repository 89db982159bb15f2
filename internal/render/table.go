// Package render draws engine views and dashboard figures as plain text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/nexus/pkg/grid"
)

// Indicator texts.
const (
	MsgLoading   = "Loading data..."
	MsgNoResults = "No results found."
)

// Checkbox glyphs.
const (
	boxChecked       = "[x]"
	boxUnchecked     = "[ ]"
	boxIndeterminate = "[-]"
)

// Table writes one frame of e's table: the toolbar, the rows of v (or the
// loading or empty indicator) and, when there are results, the footer.
func Table[T grid.Record](w io.Writer, e *grid.Engine[T], v grid.View[T]) error {
	var sb strings.Builder
	toolbar(&sb, e, v)
	sb.WriteString("\n")

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	header := append([]string{headerBox(v.Selection)}, e.Headers()...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	if !v.Loading {
		for _, r := range v.Rows {
			box := boxUnchecked
			if e.State().IsSelected(r.RecordID()) {
				box = boxChecked
			}
			fmt.Fprintln(tw, strings.Join(append([]string{box}, e.Cells(r)...), "\t"))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	switch {
	case v.Loading:
		sb.WriteString(MsgLoading + "\n")
	case v.NoResults():
		sb.WriteString(MsgNoResults + "\n")
	}

	if !v.Loading && v.Pagination.TotalFiltered > 0 {
		sb.WriteString("\n")
		footer(&sb, v.Pagination)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func headerBox(s grid.SelectionSummary) string {
	switch {
	case s.AllPageSelected:
		return boxChecked
	case s.Indeterminate:
		return boxIndeterminate
	default:
		return boxUnchecked
	}
}

// toolbar writes the search box, one line per filter and, when anything is
// selected, the selection bar.
func toolbar[T grid.Record](sb *strings.Builder, e *grid.Engine[T], v grid.View[T]) {
	cfg := e.Config()
	state := e.State()

	if state.Search != "" {
		fmt.Fprintf(sb, "Search: %q\n", state.Search)
	} else {
		placeholder := cfg.SearchPlaceholder
		if placeholder == "" {
			placeholder = "Search..."
		}
		fmt.Fprintf(sb, "Search: (%s)\n", placeholder)
	}

	for _, f := range cfg.Filters {
		fmt.Fprintf(sb, "%s: %s\n", f.Label, filterLabel(f, state.FilterValue(f.Key)))
	}

	if n := v.Selection.SelectedCount; n > 0 {
		line := strconv.Itoa(n) + " selected"
		if a := e.Action(); a.Available() {
			line += " | " + a.Label()
		}
		sb.WriteString(line + "\n")
	}
}

func filterLabel[T any](f grid.Filter[T], value string) string {
	if value == "" || value == grid.FilterAll {
		return "All"
	}
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// footer writes the range summary, the page size and the page buttons.
func footer(sb *strings.Builder, p grid.Pagination) {
	fmt.Fprintf(sb, "Showing %d to %d of %d results\n", p.RangeStart, p.RangeEnd, p.TotalFiltered)
	fmt.Fprintf(sb, "Rows per page: %d\n", p.ItemsPerPage)

	buttons := make([]string, 0, p.TotalPages+2)
	if p.HasPrev() {
		buttons = append(buttons, "<Prev")
	}
	for _, n := range p.Pages() {
		if n == p.Page {
			buttons = append(buttons, "["+strconv.Itoa(n)+"]")
			continue
		}
		buttons = append(buttons, strconv.Itoa(n))
	}
	if p.HasNext() {
		buttons = append(buttons, "Next>")
	}
	fmt.Fprintf(sb, "Pages: %s\n", strings.Join(buttons, " "))
}
