package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/nexus/internal/insights"
	"github.com/mesh-intelligence/nexus/pkg/nexus"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.mustRun("version")
	assert.Contains(t, r.stdout, "nexus v"+nexus.Version)

	_, err := os.Stat(env.configDir)
	assert.True(t, os.IsNotExist(err), "version does not touch the config dir")
}

func TestInit(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.mustRun("init")
	assert.Contains(t, r.stdout, "nexus initialized")

	data, err := os.ReadFile(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, env.dataDir, cfg.DataDir)
	assert.Equal(t, "600ms", cfg.Latency)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, insights.DefaultModel, cfg.Insights.Model)

	for _, name := range []string{"stock.jsonl", "sales.jsonl", "crew.jsonl"} {
		_, err := os.Stat(filepath.Join(env.dataDir, name))
		assert.NoError(t, err, "%s seeded", name)
	}
}

func TestInit_KeepsEditedConfig(t *testing.T) {
	edited := "backend: sqlite\npage_size: 10\n"
	env := newTestEnv(t, edited)
	env.mustRun("init")

	data, err := os.ReadFile(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, edited, string(data))
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "backend: postgres\n"},
		{"negative latency", "backend: memory\nlatency: -1s\n"},
		{"zero page size", "backend: sqlite\npage_size: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.yaml)
			r := env.run("", "stats")
			assert.Error(t, r.err)
			assert.Equal(t, exitUserError, r.code)
		})
	}
}

func TestInvalidLogLevel(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run("", "--log-level", "loud", "stats")
	assert.Equal(t, exitUserError, r.code)
}

func TestStats(t *testing.T) {
	t.Run("sqlite computes figures", func(t *testing.T) {
		env := newTestEnv(t, "")
		r := env.mustRun("stats")
		assert.Contains(t, r.stdout, "$1,319.92")

		r = env.mustRun("--json", "stats")
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
		assert.Equal(t, "1319.92", got["total_revenue"])
		assert.EqualValues(t, 1, got["active_orders"])
		assert.EqualValues(t, 3, got["low_stock_alerts"])
		assert.EqualValues(t, 4, got["total_crew"])
	})

	t.Run("memory serves fixed figures", func(t *testing.T) {
		env := newTestEnv(t, "backend: memory\nlatency: 0s\n")
		r := env.mustRun("stats")
		assert.Contains(t, r.stdout, "$125,430.50")
		assert.Contains(t, r.stdout, "Total Crew        12")
	})
}

func TestList(t *testing.T) {
	env := newTestEnv(t, "")

	r := env.mustRun("stock", "list")
	assert.Contains(t, r.stdout, "Wireless Headphones")
	assert.NotContains(t, r.stdout, "Webcam 4K", "sixth item is on page 2")
	assert.Contains(t, r.stdout, "Showing 1 to 5 of 6 results")

	r = env.mustRun("stock", "list", "--page", "2")
	assert.Contains(t, r.stdout, "Webcam 4K")
	assert.Contains(t, r.stdout, "Showing 6 to 6 of 6 results")

	r = env.mustRun("sales", "list", "--search", "ACME")
	assert.Contains(t, r.stdout, "Acme Corp")
	assert.Contains(t, r.stdout, "Showing 1 to 1 of 1 results")

	r = env.mustRun("crew", "list", "--filter", "status=On Leave")
	assert.Contains(t, r.stdout, "Charlie Brown")
	assert.NotContains(t, r.stdout, "Alice Johnson")
	assert.Contains(t, r.stdout, "Status: On Leave")

	r = env.mustRun("crew", "list", "--search", "nobody")
	assert.Contains(t, r.stdout, "No results found.")
	assert.NotContains(t, r.stdout, "Showing")
}

func TestList_JSON(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.mustRun("--json", "stock", "list", "--per-page", "10", "--filter", "status=Low Stock", "--select", "2")

	var got struct {
		Filters    map[string]string `json:"filters"`
		Rows       []map[string]any  `json:"rows"`
		Pagination struct {
			Page          int `json:"page"`
			ItemsPerPage  int `json:"items_per_page"`
			TotalPages    int `json:"total_pages"`
			TotalFiltered int `json:"total_filtered"`
		} `json:"pagination"`
		Selection struct {
			IDs           []string `json:"ids"`
			Count         int      `json:"count"`
			Indeterminate bool     `json:"indeterminate"`
		} `json:"selection"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, "Low Stock", got.Filters["status"])
	require.Len(t, got.Rows, 2)
	assert.Equal(t, 10, got.Pagination.ItemsPerPage)
	assert.Equal(t, 1, got.Pagination.TotalPages)
	assert.Equal(t, 2, got.Pagination.TotalFiltered)
	assert.Equal(t, []string{"2"}, got.Selection.IDs)
	assert.True(t, got.Selection.Indeterminate)
}

func TestList_SelectPage(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.mustRun("crew", "list", "--select-page")
	assert.Contains(t, r.stdout, "4 selected | Delete Selected")
	assert.Contains(t, r.stdout, "[x]  Employee")
}

func TestList_FirstPageOfEmptyResult(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.mustRun("crew", "list", "--filter", "department=Logistics", "--page", "1")
	assert.Contains(t, r.stdout, "No results found.")

	r = env.run("", "crew", "list", "--filter", "department=Logistics", "--page", "2")
	assert.Equal(t, exitUserError, r.code)
}

func TestList_UserErrors(t *testing.T) {
	env := newTestEnv(t, "")
	tests := []struct {
		name string
		args []string
	}{
		{"page out of range", []string{"stock", "list", "--page", "3"}},
		{"page zero", []string{"stock", "list", "--page", "0"}},
		{"bad per-page", []string{"stock", "list", "--per-page", "0"}},
		{"bad filter", []string{"stock", "list", "--filter", "status"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := env.run("", tt.args...)
			assert.Error(t, r.err)
			assert.Equal(t, exitUserError, r.code)
		})
	}
}

func TestCrewEditAndDelete(t *testing.T) {
	env := newTestEnv(t, "")

	r := env.mustRun("crew", "edit", "c3", "--status", "Active", "--score", "80")
	assert.Contains(t, r.stdout, "Updated crew member c3")

	r = env.mustRun("--json", "crew", "list", "--search", "charlie")
	assert.Contains(t, r.stdout, `"status": "Active"`)
	assert.Contains(t, r.stdout, `"performance_score": 80`)

	r = env.run("", "crew", "edit", "c3", "--department", "Catering")
	assert.Equal(t, exitUserError, r.code, "invalid department rejected")

	r = env.run("", "crew", "edit", "c99", "--role", "Clerk")
	assert.Equal(t, exitUserError, r.code, "missing member")

	r = env.mustRun("crew", "delete", "c1", "c2")
	assert.Contains(t, r.stdout, "Deleted crew member c2")

	r = env.mustRun("stats")
	assert.Contains(t, r.stdout, "Total Crew        2")
}

func TestInsights_NoKey(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.mustRun("insights", "stock")
	assert.Contains(t, r.stdout, insights.MsgStockNoKey)

	r = env.mustRun("--json", "insights", "sales")
	assert.Contains(t, r.stdout, `"insight": "API Key not configured."`)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(userErrorf("bad")))
	assert.Equal(t, exitSysError, exitCode(os.ErrPermission))
}
