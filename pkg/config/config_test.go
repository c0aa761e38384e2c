package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/books.yaml")
	require.Error(t, err, "expected error for nonexistent path")

	// Load with empty path uses default search (may use defaults if no config file)
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "books.csv", cfg.Catalog.DefaultFile)
	assert.Equal(t, ',', cfg.Comma())
	assert.Equal(t, "books.db", cfg.Storage.SnapshotPath)
	assert.Equal(t, "books_report.xlsx", cfg.Report.Path)
	assert.Equal(t, 40, cfg.Display.BarWidth)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
catalog:
  default_file: "library.csv"
  delimiter: ";"
storage:
  snapshot_path: "snap.sqlite"
display:
  max_rows: 25
  bar_width: -3
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "library.csv", cfg.Catalog.DefaultFile)
	assert.Equal(t, ';', cfg.Comma())
	assert.Equal(t, "snap.sqlite", cfg.Storage.SnapshotPath)
	assert.Equal(t, "books_report.xlsx", cfg.Report.Path, "unset keys keep their defaults")
	assert.Equal(t, 25, cfg.Display.MaxRows)
	assert.Equal(t, 40, cfg.Display.BarWidth, "invalid width falls back to default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadSearchesConfigsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "books.yaml"), []byte("report:\n  path: out.xlsx\n"), 0644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out.xlsx", cfg.Report.Path)
}

func TestLoadRejectsBadDelimiter(t *testing.T) {
	for _, d := range []string{`"`, "ab", `"\n"`} {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("catalog:\n  delimiter: '"+d+"'\n"), 0644))

		_, err := Load(path)
		assert.Error(t, err, "delimiter %q", d)
	}
}
