// Package logging assembles the structured slog loggers TidyBot injects into
// its components.
//
// It owns the console and file line handlers, the fanout that feeds both from
// a single logger handle, and a no-op logger for tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup so every
// component emits the same line shapes.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Options describes logger construction parameters.
type Options struct {
	// FilePath is the log file receiving every level, opened in append mode.
	// Empty disables the file sink.
	FilePath string

	// Console receives INFO and above. Nil defaults to os.Stderr.
	Console io.Writer

	// NoColor disables level colorizing even when Console is a terminal.
	NoColor bool
}

// New constructs the application logger: a console sink at INFO and above and
// a file sink at DEBUG and above behind a single fanout handler. A log file
// that cannot be opened degrades to console-only logging with a warning
// rather than failing the run. The returned closer owns the log file.
func New(opts Options) (*slog.Logger, io.Closer) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	colorize := !opts.NoColor && shouldColorize(console)
	consoleHandler := newConsoleHandler(console, colorize)

	var closer io.Closer = nopCloser{}
	handlers := []slog.Handler{consoleHandler}
	if opts.FilePath != "" {
		file, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.New(consoleHandler).Warn("cannot open log file, continuing with console logging only",
				String("path", opts.FilePath), Error(err))
		} else {
			handlers = append(handlers, newFileHandler(file))
			closer = file
		}
	}

	return slog.New(newFanoutHandler(handlers...)), closer
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
