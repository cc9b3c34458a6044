// Package logging routes log/slog through charmbracelet/log into a file so
// nothing is written over the terminal UI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Setup opens path for appending and makes it the destination of the default
// slog logger. The returned function closes the file.
func Setup(path string, verbose bool) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	Use(f, verbose)
	return f.Close, nil
}

// Use installs a charmbracelet/log logger writing to w as the slog default
func Use(w io.Writer, verbose bool) *charmlog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportCaller:    verbose,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "bothint",
	})
	charmlog.SetDefault(logger)
	slog.SetDefault(slog.New(logger))
	return logger
}

// RecoverPanic is deferred at the top of goroutines and the program run. A
// recovered panic is logged with its stack and then cleanup runs.
func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		slog.Error("Panic recovered", "in", name, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
		if cleanup != nil {
			cleanup()
		}
	}
}
