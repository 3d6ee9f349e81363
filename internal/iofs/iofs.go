// Package iofs creates chemdb directories and the default config file.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/chemdb/pkg/config"
)

// ConfigYAML is the default configuration file.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache and log directories if they are
// missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile copies the default config.yaml to the config
// directory, unless the file already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
