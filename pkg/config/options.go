package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptSourcesStructures sets the path to the structures dump.
func OptSourcesStructures(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sources Structures", s) {
			c.Sources.Structures = s
		}
	}
}

// OptSourcesRegistry sets the path to the registry numbers spreadsheet.
func OptSourcesRegistry(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sources Registry", s) {
			c.Sources.Registry = s
		}
	}
}

// OptSourcesCatalog sets the path to the catalog ids mapping file.
func OptSourcesCatalog(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sources Catalog", s) {
			c.Sources.Catalog = s
		}
	}
}

// OptImportChunkSize sets the number of structure records processed
// per batch.
func OptImportChunkSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Chunk Size", i) {
			c.Import.ChunkSize = i
		}
	}
}

// OptImportJournal enables or disables the reject journal.
// Uses pointer to distinguish between unset (nil) and false.
func OptImportJournal(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Import.Journal = b
		}
	}
}

// OptImportCatalogSID sets the header of the dropped secondary
// identifier column of the catalog file.
func OptImportCatalogSID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog SID Column", s) {
			c.Import.CatalogSID = s
		}
	}
}

// OptImportCatalogCID sets the header of the catalog id column.
func OptImportCatalogCID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog CID Column", s) {
			c.Import.CatalogCID = s
		}
	}
}

// OptImportCatalogKey sets the header of the substance key column
// of the catalog file.
func OptImportCatalogKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Catalog Key Column", s) {
			c.Import.CatalogKey = s
		}
	}
}

// OptStructureColumnType sets the SQL type of the structural column.
func OptStructureColumnType(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Structure Column Type", s) {
			c.Structure.ColumnType = s
		}
	}
}

// OptStructureConversion sets the SQL expression that converts the
// serialized payload into the structural column type.
func OptStructureConversion(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidConversion(s) {
			c.Structure.Conversion = s
		}
	}
}

// OptStructureIndexMethod sets the index access method of the structural
// index. Valid values: "gist", "btree", "hash", "brin".
func OptStructureIndexMethod(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Structure.IndexMethod", s) {
			c.Structure.IndexMethod = s
		}
	}
}

// OptViewCollapseCatalog sets whether the compounds view keeps only one
// catalog id per substance.
func OptViewCollapseCatalog(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.View.CollapseCatalog = b
		}
	}
}

// OptCodecObabelPath sets the location of the obabel executable.
func OptCodecObabelPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Obabel Path", s) {
			c.Codec.ObabelPath = s
		}
	}
}

// OptCodecTimeoutSec sets the time limit of one structure conversion.
func OptCodecTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Codec Timeout", i) {
			c.Codec.TimeoutSec = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptMetricsTextfile sets the Prometheus textfile output path.
func OptMetricsTextfile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metrics Textfile", s) {
			c.Metrics.Textfile = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
