package chargelog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the runner's log sink and verbosity, populated from
// the --log CLI flag (spec §6): empty Path means stdout, otherwise a
// rotated file.
type Config struct {
	Level  string // debug, info, warn, error
	Path   string // empty => stdout
	Format string // json, text

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns the runner's default logging setup: info level,
// JSON to stdout.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "json",
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// rotator is the concrete *lumberjack.Logger backing a file sink, kept
// so Close can reach it directly without a type assertion.
type rotator = lumberjack.Logger

// Logger wraps a *slog.Logger together with the rotating file it
// writes to (nil when logging to stdout/stderr), so a caller can flush
// and close it cleanly on shutdown (spec §6's SIGINT flush).
type Logger struct {
	*slog.Logger
	file *rotator
}

// New builds a Logger from cfg. An empty cfg.Path logs to stdout.
func New(cfg Config) (*Logger, error) {
	var writer io.Writer
	var file *rotator

	switch cfg.Path {
	case "":
		writer = os.Stdout
	default:
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		file = &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		writer = file
	}

	lvl := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: lvl, AddSource: lvl == slog.LevelDebug}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	return &Logger{Logger: slog.New(handler), file: file}, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close flushes and closes the underlying rotating file, if any. Safe
// to call on a stdout-backed Logger, where it is a no-op.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
