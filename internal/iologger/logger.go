// Package iologger sets up the default slog logger of chemdb.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gnames/chemdb/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "chemdb.log"

var (
	mu sync.Mutex
	// current is the log file opened by the last Init, if any.
	current *os.File
)

// Init sets the default slog logger. With the "file" destination the
// log goes to LogFile in logDir, which is truncated unless append is
// true. A file opened by a previous Init is closed.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	mu.Lock()
	defer mu.Unlock()

	w, file, err := newWriter(logDir, cfg.Destination, append)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(newHandler(w, cfg)))

	if current != nil {
		_ = current.Close()
	}
	current = file
	return nil
}

// newWriter returns the log destination. The file is nil unless the
// destination is a log file.
func newWriter(
	logDir, dest string,
	append bool,
) (io.Writer, *os.File, error) {
	switch strings.ToLower(dest) {
	case "stdout":
		return os.Stdout, nil, nil
	case "file":
	default:
		return os.Stderr, nil, nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	path := filepath.Join(logDir, LogFile)
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, nil, CreateLogFileError(path, err)
	}
	return f, f, nil
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	switch strings.ToLower(cfg.Format) {
	case "text", "tint":
		// tint is rendered as plain text
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// parseLevel converts string level to slog.Level, unknown levels are
// Info.
func parseLevel(level string) slog.Level {
	var res slog.Level
	if err := res.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return res
}
