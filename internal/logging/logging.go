// Package logging provides structured logging for scrollmenu using zerolog.
//
// Loggers are plumbed through context.Context so that widget code can log
// without holding a logger field. TUI programs must never log to stdout while
// the alternate screen is active; all writers here target stderr or a file.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config describes how the application logger is constructed.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or empty
	// values fall back to "info".
	Level string
	// Format selects the writer: "console" (human readable) or "json".
	Format string
	// Output selects the destination: "stderr" or "file".
	Output string
	// File is the log file path when Output is "file".
	File string
	// Caller enables caller annotation on every event.
	Caller bool
}

const (
	// FormatConsole renders human-readable output.
	FormatConsole = "console"
	// FormatJSON renders newline-delimited JSON.
	FormatJSON = "json"

	// OutputStderr writes to standard error.
	OutputStderr = "stderr"
	// OutputFile writes to the configured file.
	OutputFile = "file"
)

// logFilePerm restricts log files to the owning user.
const logFilePerm = 0o600

// Result holds the constructed logger plus file-handle bookkeeping so the
// caller can close the file at shutdown.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle, if any. Safe to call on a console-only
// result and safe to call more than once.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	f := r.file
	r.file = nil
	return f.Close()
}

// New builds a logger from cfg. When file output is requested but the file
// cannot be opened, it falls back to stderr rather than failing: logging is
// never a reason to abort the program.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var (
		out       io.Writer = os.Stderr
		usingFile bool
		file      *os.File
	)
	if cfg.Output == OutputFile && cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
		if openErr == nil {
			out = f
			usingFile = true
			file = f
		}
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}

	return Result{
		Logger:    logCtx.Logger(),
		UsingFile: usingFile,
		FilePath:  cfg.File,
		file:      file,
	}
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext stores logger in ctx for retrieval with FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached. Widget code logs through this so that library users who
// never configure logging pay nothing.
func FromContext(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	return logger
}
