// Package iotesting provides shared helpers for integration tests.
package iotesting

import (
	"os"
	"testing"

	"github.com/gnames/chemdb/internal/ioconfig"
	"github.com/gnames/chemdb/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// Tests never run against a production database.
	TestDatabaseName = "chemdb_test"
)

// GetTestConfig returns a configuration for integration tests. It reads
// the user's config and CHEMDB_* environment variables, then forces the
// test database name and structure settings of plain PostgreSQL, so no
// chemistry cartridge is needed. Journal, metrics and file logs are
// disabled.
func GetTestConfig() *config.Config {
	cfg := config.New()
	if home, err := os.UserHomeDir(); err == nil {
		if c, err := ioconfig.Load(home); err == nil {
			cfg = c
		}
	}

	no := false
	cfg.Update([]config.Option{
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptStructureColumnType("bytea"),
		config.OptStructureConversion("payload"),
		config.OptStructureIndexMethod("btree"),
		config.OptImportJournal(&no),
		config.OptLogDestination("stderr"),
	})
	cfg.Metrics.Textfile = ""
	return cfg
}

// GetTestDatabaseConfig returns only the database part of the test
// configuration.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// TempHome creates a temporary home directory with config, cache and log
// directories and sets it as HomeDir of cfg.
func TempHome(t *testing.T, cfg *config.Config) string {
	t.Helper()
	home := t.TempDir()
	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("cannot create %s: %v", dir, err)
		}
	}
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	return home
}
