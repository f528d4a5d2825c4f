// Package logger provides the zerolog loggers used across bank-digest.
// Each component writes to its own file under the logs directory, truncated on every run.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger on stderr
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter creates a new structured logger with a custom writer
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// OpenFile creates <dir>/<component>.log (truncating any previous run) and
// returns a logger tagged with the component name. Close the returned closer
// when done.
func OpenFile(dir, component string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, component+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	log := NewWithWriter(f).With().Str("component", component).Logger()
	return log, f, nil
}
