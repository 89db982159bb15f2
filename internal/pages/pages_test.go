package pages

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nexus/internal/fixtures"
	"github.com/mesh-intelligence/nexus/internal/memory"
	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

func TestStockConfig(t *testing.T) {
	var out bytes.Buffer
	e, err := grid.New(StockConfig(&out), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Product Name", "SKU", "Category", "Quantity", "Price", "Status"}, e.Headers())
	stock := fixtures.Stock()
	assert.Equal(t, []string{"Wireless Headphones", "WH-001", "Electronics", "45", "$129.99", "In Stock"}, e.Cells(stock[0]))

	e.SetSearch("mk-0")
	v := e.Derive(stock, false)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "3", v.Rows[0].ID)

	e.SetSearch("")
	e.SetFilter("status", types.StockLowStock)
	v = e.Derive(stock, false)
	assert.Equal(t, []string{"2", "3"}, v.IDs())

	e.ToggleAll(v.IDs())
	ids, err := e.RunAction()
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids)
	assert.Equal(t, "Archived 2 items\n", out.String())
	assert.Equal(t, LabelArchive, e.Action().Label())
}

func TestSalesConfig(t *testing.T) {
	var out bytes.Buffer
	e, err := grid.New(SalesConfig(&out), nil)
	require.NoError(t, err)

	sales := fixtures.Sales()
	assert.Equal(t, []string{"#103", "TechStart Inc", "Mechanical Keyboard x2, Monitor", "2023-10-25", "$669.97", "Completed"}, e.Cells(sales[2]))

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"by id", "102", []string{"102"}},
		{"by customer", "corp", []string{"101"}},
		{"items are not searched", "keyboard", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.SetSearch(tt.search)
			assert.Equal(t, tt.want, e.Derive(sales, false).IDs())
		})
	}

	e.SetSearch("")
	e.SetFilter("status", types.SaleRefunded)
	e.ToggleAll(e.Derive(sales, false).IDs())
	_, err = e.RunAction()
	require.NoError(t, err)
	assert.Equal(t, "Generated invoices for 1 orders\n", out.String())
}

func TestCrewConfig_DeleteSelected(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { store.Detach() })
	ctx := context.Background()

	var out bytes.Buffer
	e, err := grid.New(CrewConfig(ctx, store.Crew(), &out), nil)
	require.NoError(t, err)

	crew, err := store.Crew().Fetch(ctx)
	require.NoError(t, err)
	e.SetFilter("department", "Sales")
	v := e.Derive(crew, false)
	assert.Equal(t, []string{"c2", "c4"}, v.IDs())
	assert.Equal(t, []string{"Bob Smith <bob@nexus.com>", "Sales Associate / Sales", "Active", "88%"}, e.Cells(v.Rows[0]))

	e.ToggleAll(v.IDs())
	ids, err := e.RunAction()
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c4"}, ids)
	assert.Equal(t, "Deleted 2 members\n", out.String())

	crew, err = store.Crew().Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, crew, 2)
	assert.Equal(t, 0, e.State().SelectedCount())
}

func TestCrewConfig_DeleteReportsFailures(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { store.Detach() })

	e, err := grid.New(CrewConfig(context.Background(), store.Crew(), io.Discard), nil)
	require.NoError(t, err)

	e.ToggleSelection("c1")
	e.ToggleSelection("ghost")
	_, err = e.RunAction()
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = store.Crew().Get(context.Background(), "c1")
	assert.ErrorIs(t, err, types.ErrNotFound, "valid ids are still deleted")
}
