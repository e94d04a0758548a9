//go:build integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cperrin88/archdb/test/testutil"
	"github.com/stretchr/testify/require"
)

// writeSyncDir writes every fixture repository as <name>.db into a fresh
// sync directory and returns it.
func writeSyncDir(t *testing.T) string {
	t.Helper()
	syncDir := t.TempDir()
	compressions := []testutil.Compression{testutil.Gzip, testutil.Xz, testutil.Plain, testutil.Gzip}
	for i, repo := range testutil.MultiRepositories() {
		data := testutil.DBArchive(t, repo.Records, compressions[i%len(compressions)])
		require.NoError(t, os.WriteFile(filepath.Join(syncDir, repo.Name+".db"), data, 0o644))
	}
	return syncDir
}

// writeConfig writes a config that reads every fixture repository from
// syncDir and returns its path.
func writeConfig(t *testing.T, syncDir string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `settings:
  sync_dir: ` + syncDir + `
  log_level: error
repositories:
  - name: core
  - name: extra
  - name: derivative
  - name: personal
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0o600))
	return cfgPath
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

type outputRow struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Repository string   `json:"repository"`
	Provides   []string `json:"provides"`
}

// executeJSON runs the root command with JSON output and decodes the rows.
func executeJSON(t *testing.T, args ...string) []outputRow {
	t.Helper()
	out, err := execute(t, append([]string{"-o", "json"}, args...)...)
	require.NoError(t, err, out)

	var rows []outputRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows), out)
	return rows
}
