package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nexus/internal/fixtures"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func TestFixturesAreValid(t *testing.T) {
	v := newValidator(t)
	for _, s := range fixtures.Stock() {
		assert.NoError(t, v.Stock(s), "stock %s", s.ID)
	}
	for _, s := range fixtures.Sales() {
		assert.NoError(t, v.Sale(s), "sale %s", s.ID)
	}
	for _, c := range fixtures.Crew() {
		assert.NoError(t, v.Crew(c), "crew %s", c.ID)
	}
}

func TestCrewRules(t *testing.T) {
	base := fixtures.Crew()[0]

	tests := []struct {
		name    string
		mutate  func(c *types.CrewMember)
		wantErr bool
	}{
		{name: "unchanged", mutate: func(c *types.CrewMember) {}},
		{name: "new member without id", mutate: func(c *types.CrewMember) { c.ID = "" }},
		{name: "logistics department", mutate: func(c *types.CrewMember) { c.Department = "Logistics" }},
		{name: "score lower bound", mutate: func(c *types.CrewMember) { c.PerformanceScore = 0 }},
		{name: "score upper bound", mutate: func(c *types.CrewMember) { c.PerformanceScore = 100 }},
		{name: "score above range", mutate: func(c *types.CrewMember) { c.PerformanceScore = 101 }, wantErr: true},
		{name: "negative score", mutate: func(c *types.CrewMember) { c.PerformanceScore = -1 }, wantErr: true},
		{name: "empty name", mutate: func(c *types.CrewMember) { c.Name = "" }, wantErr: true},
		{name: "empty role", mutate: func(c *types.CrewMember) { c.Role = "" }, wantErr: true},
		{name: "malformed email", mutate: func(c *types.CrewMember) { c.Email = "alice" }, wantErr: true},
		{name: "unknown status", mutate: func(c *types.CrewMember) { c.Status = "Retired" }, wantErr: true},
		{name: "lowercase status", mutate: func(c *types.CrewMember) { c.Status = "active" }, wantErr: true},
		{name: "unknown department", mutate: func(c *types.CrewMember) { c.Department = "Legal" }, wantErr: true},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			tt.mutate(&m)
			err := v.Crew(m)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidData)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStockAndSaleRules(t *testing.T) {
	v := newValidator(t)

	s := fixtures.Stock()[0]
	s.Quantity = -1
	assert.ErrorIs(t, v.Stock(s), types.ErrInvalidData)

	s = fixtures.Stock()[0]
	s.Status = "Discontinued"
	assert.ErrorIs(t, v.Stock(s), types.ErrInvalidData)

	s = fixtures.Stock()[0]
	s.LastUpdated = "25/10/2023"
	assert.ErrorIs(t, v.Stock(s), types.ErrInvalidData)

	sale := fixtures.Sales()[0]
	sale.Items = nil
	assert.ErrorIs(t, v.Sale(sale), types.ErrInvalidData)

	sale = fixtures.Sales()[0]
	sale.Status = "Shipped"
	assert.ErrorIs(t, v.Sale(sale), types.ErrInvalidData)
}
