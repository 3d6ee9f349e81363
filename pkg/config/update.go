package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}

	s = c.Sources.Structures
	if s != "" {
		res = append(res, OptSourcesStructures(s))
	}
	s = c.Sources.Registry
	if s != "" {
		res = append(res, OptSourcesRegistry(s))
	}
	s = c.Sources.Catalog
	if s != "" {
		res = append(res, OptSourcesCatalog(s))
	}

	i = c.Import.ChunkSize
	if i > 0 {
		res = append(res, OptImportChunkSize(i))
	}
	if c.Import.Journal != nil {
		res = append(res, OptImportJournal(c.Import.Journal))
	}
	s = c.Import.CatalogSID
	if s != "" {
		res = append(res, OptImportCatalogSID(s))
	}
	s = c.Import.CatalogCID
	if s != "" {
		res = append(res, OptImportCatalogCID(s))
	}
	s = c.Import.CatalogKey
	if s != "" {
		res = append(res, OptImportCatalogKey(s))
	}

	s = c.Structure.ColumnType
	if s != "" {
		res = append(res, OptStructureColumnType(s))
	}
	s = c.Structure.Conversion
	if s != "" {
		res = append(res, OptStructureConversion(s))
	}
	s = c.Structure.IndexMethod
	if s != "" {
		res = append(res, OptStructureIndexMethod(s))
	}

	if c.View.CollapseCatalog != nil {
		res = append(res, OptViewCollapseCatalog(c.View.CollapseCatalog))
	}

	s = c.Codec.ObabelPath
	if s != "" {
		res = append(res, OptCodecObabelPath(s))
	}
	i = c.Codec.TimeoutSec
	if i > 0 {
		res = append(res, OptCodecTimeoutSec(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	s = c.Metrics.Textfile
	if s != "" {
		res = append(res, OptMetricsTextfile(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

// isValidConversion checks that the conversion expression reads the
// serialized payload column and does not try to chain statements.
func isValidConversion(s string) bool {
	if !isValidString("Structure Conversion", s) {
		return false
	}
	if !strings.Contains(s, "payload") || strings.Contains(s, ";") {
		gn.Warn(
			"<em>Structure Conversion</em> must be a single SQL expression "+
				"over the <em>payload</em> column, ignoring '%s'", s,
		)
		return false
	}
	return true
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Structure.IndexMethod": {"gist": s, "btree": s, "hash": s, "brin": s},
		"Log.Level":             {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":            {"json": s, "text": s, "tint": s},
		"Log.Destination":       {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
