// Package ioconfig reads chemdb configuration from config.yaml and
// CHEMDB_* environment variables.
package ioconfig

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gnames/chemdb/internal/iofs"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// config.yaml settings.
const EnvPrefix = "CHEMDB"

// Load reads config.yaml from the config directory of homeDir and applies
// environment variables on top of it. A missing config file is not an
// error, defaults and environment are used then. Invalid values are
// ignored with a warning, and their defaults are kept.
func Load(homeDir string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigType("yaml")
	initEnvVars(v)

	_, err := os.Stat(cfgPath)
	switch {
	case err == nil:
		v.SetConfigFile(cfgPath)
		if err = v.ReadInConfig(); err != nil {
			return nil, iofs.ReadFileError(cfgPath, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var cfgViper config.Config
	if err = v.Unmarshal(&cfgViper); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	res := config.New()
	res.Update(cfgViper.ToOptions())
	res.Update([]config.Option{config.OptHomeDir(homeDir)})
	return res, nil
}

// initEnvVars binds environment variables manually, so it is clear
// which of them are allowed. They match fields of config.ToOptions().
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.database",
		"database.ssl_mode",

		"sources.structures",
		"sources.registry",
		"sources.catalog",

		"import.chunk_size",
		"import.journal",
		"import.catalog_sid",
		"import.catalog_cid",
		"import.catalog_key",

		"structure.column_type",
		"structure.conversion",
		"structure.index_method",

		"view.collapse_catalog",

		"codec.obabel_path",
		"codec.timeout_sec",

		"log.level",
		"log.format",
		"log.destination",

		"metrics.textfile",
	}
	for _, k := range keys {
		env := strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		_ = v.BindEnv(k, EnvPrefix+"_"+env)
	}
}
