// Package logging sets up the zerolog logger used by promchat.
//
// The terminal belongs to the chat UI, so logs only ever go to a rotating
// file, and the default level is disabled.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	Level string // zerolog level name; "" and "disabled" turn logging off
	File  string
}

// ParseLevel converts a level name into a zerolog level
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" || level == "off" || level == "none" {
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Disabled, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// New builds a logger. The returned closer releases the log file.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if lvl == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if opts.File == "" {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("log file path is required when logging is enabled")
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "promchat").
		Logger()

	return logger, w, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
