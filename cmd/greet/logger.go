package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// setupLogger builds the diagnostics logger. Output goes to stderr when
// verbose and to logPath when set; with neither it is discarded. Stdout is
// never a target. If the log file cannot be opened the logger keeps working
// without it.
func setupLogger(stderr io.Writer, logPath string, verbose bool) (*log.Logger, func()) {
	var writers []io.Writer
	if verbose {
		writers = append(writers, stderr)
	}

	cleanup := func() {}
	if logPath != "" {
		if f, err := openLogFile(logPath); err != nil {
			fmt.Fprintf(stderr, "warning: logging to stderr only: %v\n", err)
			if !verbose {
				writers = append(writers, stderr)
			}
		} else {
			writers = append(writers, f)
			cleanup = func() { f.Close() }
		}
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	flags := log.LstdFlags
	if verbose {
		flags |= log.Lshortfile
	}
	return log.New(out, "[greet] ", flags), cleanup
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
