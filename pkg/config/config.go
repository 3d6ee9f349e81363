// Package config provides configuration management for chemdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Sources: structures, registry, catalog
//   - Import: chunk_size, journal, catalog_sid, catalog_cid, catalog_key
//   - Structure: column_type, conversion, index_method
//   - View: collapse_catalog
//   - Codec: obabel_path, timeout_sec
//   - Log: level, format, destination
//   - Metrics: textfile
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CHEMDB_ prefix with underscores for nesting:
//
//	CHEMDB_DATABASE_HOST=localhost
//	CHEMDB_DATABASE_PORT=5432
//	CHEMDB_IMPORT_CHUNK_SIZE=10000
//	CHEMDB_LOG_LEVEL=info
package config

// Config represents the complete chemdb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Sources are locations of the input dumps.
	Sources SourcesConfig `mapstructure:"sources" yaml:"sources"`

	// Import contains settings of the populate command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Structure describes how the database-native structural column
	// is built and indexed.
	Structure StructureConfig `mapstructure:"structure" yaml:"structure"`

	View ViewConfig `mapstructure:"view" yaml:"view"`

	Codec CodecConfig `mapstructure:"codec" yaml:"codec"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// SourcesConfig keeps paths to the three input dumps.
type SourcesConfig struct {
	// Structures is a tab-separated file without header with
	// substance key, InChI and InChIKey columns (DSSTox structures dump).
	Structures string `mapstructure:"structures" yaml:"structures"`

	// Registry is an xlsx spreadsheet with exactly three columns:
	// CAS registry number, substance key and substance name.
	Registry string `mapstructure:"registry" yaml:"registry"`

	// Catalog is a tab-separated file with a header and three columns:
	// PubChem SID, PubChem CID and substance key.
	Catalog string `mapstructure:"catalog" yaml:"catalog"`
}

// ImportConfig contains settings used during data import.
type ImportConfig struct {
	// ChunkSize is the maximal number of structure records kept in memory
	// at once. Larger chunks reduce per-batch overhead but use more memory.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`

	// Journal is true if rejected records are saved to a SQLite file
	// in the cache directory.
	Journal *bool `mapstructure:"journal" yaml:"journal"`

	// CatalogSID is the header of the secondary identifier column of the
	// catalog mapping file. The column is dropped on load.
	CatalogSID string `mapstructure:"catalog_sid" yaml:"catalog_sid"`

	// CatalogCID is the header of the catalog identifier column.
	CatalogCID string `mapstructure:"catalog_cid" yaml:"catalog_cid"`

	// CatalogKey is the header of the substance key column.
	CatalogKey string `mapstructure:"catalog_key" yaml:"catalog_key"`
}

// StructureConfig describes the database-native structural column.
// Defaults target the RDKit PostgreSQL cartridge.
type StructureConfig struct {
	// ColumnType is the SQL type of the finalized structural column.
	ColumnType string `mapstructure:"column_type" yaml:"column_type"`

	// Conversion is the SQL expression that builds ColumnType from the
	// serialized `payload` BYTEA column.
	Conversion string `mapstructure:"conversion" yaml:"conversion"`

	// IndexMethod is the index access method used for the structural
	// index (gist for the RDKit cartridge).
	IndexMethod string `mapstructure:"index_method" yaml:"index_method"`
}

// ViewConfig contains settings of the denormalized compounds view.
type ViewConfig struct {
	// CollapseCatalog keeps only the lowest catalog id per substance
	// in the view. By default all catalog ids are preserved, and a substance
	// with several catalog ids appears in several rows.
	CollapseCatalog *bool `mapstructure:"collapse_catalog" yaml:"collapse_catalog"`
}

// CodecConfig contains settings of the Open Babel structure codec.
type CodecConfig struct {
	// ObabelPath is the path (or name in PATH) of the obabel executable.
	ObabelPath string `mapstructure:"obabel_path" yaml:"obabel_path"`

	// TimeoutSec limits the time of one structure conversion.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// MetricsConfig determines where import counters are exported.
type MetricsConfig struct {
	// Textfile is a path for Prometheus text exposition output
	// (node_exporter textfile collector). Empty means no export.
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	journal := true
	collapse := false
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "chemdb",
			SSLMode:  "disable",
		},
		Import: ImportConfig{
			ChunkSize:  10_000,
			Journal:    &journal,
			CatalogSID: "SID",
			CatalogCID: "CID",
			CatalogKey: "DTXSID",
		},
		Structure: StructureConfig{
			ColumnType:  "mol",
			Conversion:  "mol_from_ctab(convert_from(payload, 'UTF8')::cstring)",
			IndexMethod: "gist",
		},
		View: ViewConfig{
			CollapseCatalog: &collapse,
		},
		Codec: CodecConfig{
			ObabelPath: "obabel",
			TimeoutSec: 30,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// WithJournal returns true if the reject journal is enabled.
func (c *Config) WithJournal() bool {
	return c.Import.Journal != nil && *c.Import.Journal
}

// WithCollapsedCatalog returns true if the compounds view keeps only
// one catalog id per substance.
func (c *Config) WithCollapsedCatalog() bool {
	return c.View.CollapseCatalog != nil && *c.View.CollapseCatalog
}
