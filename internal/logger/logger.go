package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls logger construction.
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // text, json
	Output io.Writer // defaults to os.Stderr
}

// DefaultConfig returns the configuration used before any explicit
// Configure call.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "text",
		Output: os.Stderr,
	}
}

// Logger wraps slog with helpers for command execution logging.
type Logger struct {
	slog *slog.Logger
}

// New creates a logger from the given configuration.
func New(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(config.Level)}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "json") {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return &Logger{slog: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, attrs ...any) {
	l.slog.Debug(msg, attrs...)
}

func (l *Logger) Info(msg string, attrs ...any) {
	l.slog.Info(msg, attrs...)
}

func (l *Logger) Warn(msg string, attrs ...any) {
	l.slog.Warn(msg, attrs...)
}

func (l *Logger) Error(msg string, attrs ...any) {
	l.slog.Error(msg, attrs...)
}

// WithComponent returns a logger with a component attribute attached to
// every record.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{slog: l.slog.With("component", component)}
}

// WithOperation returns a logger with an operation attribute attached to
// every record.
func (l *Logger) WithOperation(operation string) *Logger {
	return &Logger{slog: l.slog.With("operation", operation)}
}

// GitCommand logs a git invocation at debug level.
func (l *Logger) GitCommand(command string, args []string, attrs ...any) {
	all := append([]any{"command", command, "args", strings.Join(args, " ")}, attrs...)
	l.slog.Debug("executing git command", all...)
}

// GitResult logs the outcome of a git invocation. Failures log at debug
// level too: callers decide what is user-facing.
func (l *Logger) GitResult(command string, success bool, output string, attrs ...any) {
	all := append([]any{"command", command, "success", success, "output", strings.TrimSpace(output)}, attrs...)
	l.slog.Debug("git command finished", all...)
}

// HookCommand logs an external helper invocation at debug level.
func (l *Logger) HookCommand(command string, attrs ...any) {
	all := append([]any{"command", command}, attrs...)
	l.slog.Debug("executing hook", all...)
}
