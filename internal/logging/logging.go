// Package logging builds the slog logger used across extbuild. Output is a
// human-readable text stream rendered by charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewHandler returns a text handler writing to w at the given level. An
// empty writer defaults to os.Stderr. Debug level also reports timestamps.
func NewHandler(level string, w io.Writer) (slog.Handler, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: lvl == log.DebugLevel,
	}), nil
}

// New returns a slog.Logger backed by NewHandler.
func New(level string, w io.Writer) (*slog.Logger, error) {
	h, err := NewHandler(level, w)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

// ParseLevel maps a level name onto a charmbracelet/log level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q: use debug, info, warn or error", level)
	}
}
