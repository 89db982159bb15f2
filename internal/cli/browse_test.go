package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestBrowse_Navigation(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run(script("next", "next", "prev", "page 9", "per-page 10", "quit"), "browse", "stock")
	require.NoError(t, r.err)

	out := r.stdout
	assert.True(t, strings.HasPrefix(out, "Search: (Search products or SKU...)"), out)
	assert.Contains(t, out, "Loading data...")
	assert.Contains(t, out, "Showing 6 to 6 of 6 results")
	assert.Contains(t, out, "Error: already on the last page")
	assert.Contains(t, out, "Error: page 9 out of range (2 pages)")
	assert.Contains(t, out, "Showing 1 to 6 of 6 results")
	assert.Contains(t, out, "Rows per page: 10")
}

func TestBrowse_SearchAndFilter(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run(script("search key", "search", "filter department Logistics", "filter department all", "bogus", "quit"), "browse", "crew")
	require.NoError(t, r.err)

	assert.Contains(t, r.stdout, `Search: "key"`)
	assert.Contains(t, r.stdout, "No results found.")
	assert.Contains(t, r.stdout, "Department: Logistics")
	assert.Contains(t, r.stdout, `Error: unknown command "bogus" (type help)`)
}

func TestBrowse_BulkDeleteConfirmed(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run(script("run", "select c1", "select c3", "run", "y", "quit"), "browse", "crew")
	require.NoError(t, r.err)

	assert.Contains(t, r.stdout, "Error: no records selected")
	assert.Contains(t, r.stdout, "2 selected | Delete Selected")
	assert.Contains(t, r.stdout, "Delete Selected: apply to 2 records? [y/N]")
	assert.Contains(t, r.stdout, "Deleted 2 members")
	assert.Contains(t, r.stdout, "Showing 1 to 2 of 2 results")

	stats := env.mustRun("stats")
	assert.Contains(t, stats.stdout, "Total Crew        2")
}

func TestBrowse_BulkActionCancelled(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run(script("select-page", "run", "n", "quit"), "browse", "sales")
	require.NoError(t, r.err)

	assert.Contains(t, r.stdout, "Cancelled.")
	assert.NotContains(t, r.stdout, "Generated invoices")
	assert.Contains(t, r.stdout, "4 selected | Generate Invoice", "selection survives a cancelled action")
}

func TestBrowse_InvoiceClearsSelection(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run(script("select 101", "run", "yes", "quit"), "browse", "sales")
	require.NoError(t, r.err)

	assert.Contains(t, r.stdout, "Generated invoices for 1 orders")
	last := r.stdout[strings.LastIndex(r.stdout, "Generated invoices"):]
	assert.NotContains(t, last, "selected |")
}

func TestBrowse_EOFEndsSession(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run("", "browse", "stock")
	assert.NoError(t, r.err)
}

func TestBrowse_UnknownPage(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run("", "browse", "dashboard")
	assert.Equal(t, exitUserError, r.code)
	assert.ErrorIs(t, r.err, types.ErrUnknownResource)
}

func TestBrowse_HelpListsPageSizes(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run(script("help", "quit"), "browse", "stock")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "rows per page (5, 10, 20 or 50)")
}

func TestPageSizeList(t *testing.T) {
	assert.Equal(t, "5, 10, 20 or 50", pageSizeList())
}
