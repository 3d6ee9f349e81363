package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "chemdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/chemdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/chemdb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/chemdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/chemdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// JournalFilePath returns the path of the SQLite file with rejected records.
// Returns ~/.cache/chemdb/rejects.sqlite by default.
func JournalFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "rejects.sqlite")
}
