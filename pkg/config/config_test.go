package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./datasets", cfg.DataPath)
	assert.Equal(t, DefaultDataset, cfg.Dataset)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_path: /srv/atomdb\ndataset: nist\nserver:\n  port: 9200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/atomdb", cfg.DataPath)
	assert.Equal(t, "nist", cfg.Dataset)
	assert.Equal(t, 9200, cfg.Server.Port)
	// Unset file values keep their defaults.
	assert.Equal(t, "127.0.0.1", cfg.Server.Bind)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_path: /from/file\n"), 0o644))

	t.Setenv("ATOMDB_DATAPATH", "/from/env")
	t.Setenv("ATOMDB_PORT", "9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataPath)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("ATOMDB_DATAPATH", "/env/only")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/only", cfg.DataPath)
	assert.Equal(t, DefaultDataset, cfg.Dataset)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := DefaultConfig()
	want.DataPath = "/srv/atomdb"
	require.NoError(t, Save(want, path))
	assert.True(t, Exists(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
