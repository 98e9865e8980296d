// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports level and format selection plus rotating file output via lumberjack

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is a logrus level name, defaults to info
	Level string

	// Format is "text" or "json"
	Format string

	// File enables rotating file output when set
	File string
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logger writing to stdout, or to a rotating file when opts.File is set
func NewLogger(opts Options) *Logger {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	return NewLoggerWithWriter(out, opts)
}

// NewLoggerWithWriter creates a logger writing to out
func NewLoggerWithWriter(out io.Writer, opts Options) *Logger {
	l := logrus.New()
	l.SetOutput(out)

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}
