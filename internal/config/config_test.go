package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SLACALC_CONFIG", "")
	t.Setenv("SLACALC_DB", "")
	t.Setenv("SLACALC_EXPORT_DIR", "")
	t.Setenv("SLACALC_LOG_USE_CASES", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".slacalc", "slacalc.db"), cfg.DBPath)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_DefaultFileNextToDatabase(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".slacalc")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("export_dir: /tmp/sla\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sla", cfg.ExportDir)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "slacalc.yaml")
	content := `
db_path: /tmp/yaml.db
export_dir: /tmp/yaml-exports
log_use_cases: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SLACALC_CONFIG", path)
	t.Setenv("SLACALC_DB", "/tmp/env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "/tmp/yaml-exports", cfg.ExportDir)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_EnvBool(t *testing.T) {
	isolate(t)
	t.Setenv("SLACALC_LOG_USE_CASES", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.LogUseCases)

	t.Setenv("SLACALC_LOG_USE_CASES", "sometimes")
	_, err = Load()
	assert.ErrorContains(t, err, "SLACALC_LOG_USE_CASES")
}

func TestLoad_MalformedYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [unterminated\n"), 0o644))
	t.Setenv("SLACALC_CONFIG", path)

	_, err := Load()
	assert.ErrorContains(t, err, "parsing")
}
