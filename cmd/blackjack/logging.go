package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates a charmbracelet logger at the named level
func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// openLogFile logs to path, truncating it. The TUI owns the terminal.
func openLogFile(path, level string) (*os.File, *log.Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	logger, err := newLogger(f, level, "blackjack")
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, logger, nil
}
