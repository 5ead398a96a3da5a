// Package logging provides the leveled, optionally colored console logger
// with an optional rotating file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/backmassage/texorg/internal/config"
	"github.com/backmassage/texorg/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// Warnings and errors are always shown; info needs -v and debug needs -vv.
type Logger struct {
	mu        sync.Mutex
	verbosity int
	out       io.Writer
	errOut    io.Writer
	file      *lumberjack.Logger
	warnings  int
	errors    int
}

// NewLogger configures terminal colors from cfg and optionally opens the
// log file. Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return NewLoggerTo(cfg, os.Stdout, os.Stderr)
}

// NewLoggerTo is NewLogger with explicit console writers. Errors go to errOut.
func NewLoggerTo(cfg *config.Config, out, errOut io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{verbosity: cfg.Verbosity, out: out, errOut: errOut}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		l.file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Warnings returns the number of warnings logged so far.
func (l *Logger) Warnings() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warnings
}

// Errors returns the number of errors logged so far.
func (l *Logger) Errors() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors
}

// Verbosity returns the configured verbosity level.
func (l *Logger) Verbosity() int { return l.verbosity }

func (l *Logger) line(level, color, text string, console bool) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	if console {
		out := l.out
		if level == "ERROR" {
			out = l.errOut
		}
		if color != "" {
			_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
		} else {
			_, _ = io.WriteString(out, plain)
		}
	}
	// The file records everything, whatever the console verbosity.
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Print writes an unadorned line to the console, whatever the verbosity.
func (l *Logger) Print(format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, time.Now().Format("2006-01-02 15:04:05")+" [PRINT] "+text+"\n")
	}
}

// Info logs at INFO level (blue); shown with -v.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...), l.verbosity >= config.VerbosityInfo)
}

// Success logs at SUCCESS level (green); always shown.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...), true)
}

// Warn logs at WARN level (yellow); always shown.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.mu.Lock()
	l.warnings++
	l.mu.Unlock()
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...), true)
}

// Error logs at ERROR level (red) to the error writer; always shown.
func (l *Logger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	l.errors++
	l.mu.Unlock()
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...), true)
}

// Debug logs at DEBUG level (cyan); shown with -vv.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...), l.verbosity >= config.VerbosityDebug)
}
