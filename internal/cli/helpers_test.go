package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv is an isolated config and data directory pair.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// cmdResult holds the outcome of one command run.
type cmdResult struct {
	stdout string
	stderr string
	code   int
	err    error
}

func newTestEnv(t *testing.T, configYAML string) *testEnv {
	t.Helper()
	for _, k := range []string{"NEXUS_BACKEND", "NEXUS_LATENCY", "NEXUS_PAGE_SIZE", "NEXUS_INSIGHTS_API_KEY", "NEXUS_DATA_DIR", "NEXUS_CONFIG_DIR"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	env := &testEnv{
		t:         t,
		configDir: filepath.Join(dir, "config"),
		dataDir:   filepath.Join(dir, "data"),
	}
	if configYAML != "" {
		require.NoError(t, os.MkdirAll(env.configDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"), []byte(configYAML), 0o644))
	}
	return env
}

// run executes nexus in-process with the env's directories.
func (e *testEnv) run(stdin string, args ...string) cmdResult {
	e.t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))

	err := root.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), code: exitCode(err), err: err}
}

// mustRun fails the test unless the command exits zero.
func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	r := e.run("", args...)
	require.NoError(e.t, r.err, "nexus %v\nstdout: %s\nstderr: %s", args, r.stdout, r.stderr)
	return r
}
