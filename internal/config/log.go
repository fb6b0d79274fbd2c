package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger to write human-readable
// lines to stderr and plain timestamped lines to ~/.suntray/logs/suntrayd.log.
// Returns a close function for the log file.
func InitLogging(level string) (func(), error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, err
	}

	path, err := GlobalLogFile()
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = newLogger(zerolog.MultiLevelWriter(console, file), level)

	return func() { _ = file.Close() }, nil
}

// InitConsoleLogging configures logging to stderr only. Used by the CLI,
// which shouldn't append to the daemon's log file.
func InitConsoleLogging(level string) {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = newLogger(console, level)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
