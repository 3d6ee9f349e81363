package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/chemdb/internal/ioconfig"
	"github.com/gnames/chemdb/internal/iofs"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 10_000, cfg.Import.ChunkSize)
	assert.Equal(t, home, cfg.HomeDir)
}

func TestLoadFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	yml := `
database:
  host: db.example.org
  port: 6543
import:
  chunk_size: 500
  journal: false
structure:
  column_type: bytea
  conversion: payload
  index_method: btree
view:
  collapse_catalog: true
`
	path := config.ConfigFilePath(home)
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User, "default kept")
	assert.Equal(t, 500, cfg.Import.ChunkSize)
	assert.False(t, cfg.WithJournal())
	assert.Equal(t, "bytea", cfg.Structure.ColumnType)
	assert.Equal(t, "btree", cfg.Structure.IndexMethod)
	assert.True(t, cfg.WithCollapsedCatalog())
}

func TestLoadEnv(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	t.Setenv("CHEMDB_DATABASE_HOST", "env.example.org")
	t.Setenv("CHEMDB_IMPORT_CHUNK_SIZE", "250")
	t.Setenv("CHEMDB_LOG_LEVEL", "debug")

	cfg, err := ioconfig.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "env.example.org", cfg.Database.Host)
	assert.Equal(t, 250, cfg.Import.ChunkSize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBrokenFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	path := filepath.Join(config.ConfigDir(home), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [\n"), 0644))

	_, err := ioconfig.Load(home)
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	cfg := config.New()
	res, err := ioconfig.Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(res), "chunk_size: 10000")
	assert.Contains(t, string(res), "********")
	assert.NotContains(t, string(res), "password: postgres")
	assert.Equal(t, "postgres", cfg.Database.Password, "original untouched")
}
