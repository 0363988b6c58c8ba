package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// ConsoleLogger writes log messages through a tint slog handler.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	logger *slog.Logger
}

var _ pathkit.Logger = (*ConsoleLogger)(nil)

// NewWriterLogger creates a ConsoleLogger writing to w.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewWriterLogger(w io.Writer, verbose bool, noColor bool) *ConsoleLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// timestamps only add noise to interactive output
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})

	return &ConsoleLogger{logger: slog.New(handler)}
}

func format(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(msg string, args ...interface{}) {
	l.logger.Debug(format(msg, args))
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(format(msg, args))
}

// Error logs error messages.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(format(msg, args))
}
