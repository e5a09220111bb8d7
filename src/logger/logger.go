// Package logger sets up the process-wide slog logger. Records go either to
// slog's text handler or, in console format, through a zerolog ConsoleWriter.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"elevsim/src/config"
)

const timeFormat = "15:04:05"

// ParseLevel accepts debug, info, warn and error. Empty means debug.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelDebug, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// NewHandler builds the handler for format ("text" or "console") writing to w.
func NewHandler(w io.Writer, format string, level slog.Level, color bool) slog.Handler {
	if format == "console" {
		return newConsoleHandler(w, level, color)
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	})
}

// Init installs the default logger and returns it tagged with the run ID.
// When cfg.File is set, output is written to stdout and the file; the returned
// close function closes the file.
func Init(cfg config.Log, runID string) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stdout
	closeFn := func() error { return nil }
	if cfg.File != "" {
		logFile, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, logFile)
		closeFn = logFile.Close
	}

	logger := slog.New(NewHandler(out, cfg.Format, level, cfg.File == ""))
	slog.SetDefault(logger)
	if runID != "" {
		logger = logger.With("run", runID)
	}
	return logger, closeFn, nil
}

// Component returns a child logger for one part of the simulation.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("component", name)
}

// replaceAttr shortens the time to a clock time and the source to file:line.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(timeFormat))
		}
	}
	if a.Key == slog.SourceKey {
		if source, ok := a.Value.Any().(*slog.Source); ok {
			a.Value = slog.StringValue(shortSource(source.File, source.Line))
		}
	}
	return a
}

func shortSource(file string, line int) string {
	if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
		file = file[lastSlash+1:]
	}
	return fmt.Sprintf("%s:%d", file, line)
}
