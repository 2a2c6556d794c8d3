// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Writes JSON entries to stdout or to a size-rotated file via lumberjack

package structured

import (
	"io"
	"os"
	"strings"

	"web2one-api/core/interfaces"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how verbosely the logger writes
type Config struct {
	// Level is one of debug, info, warn, error
	Level string

	// File enables rotation into the given path; empty writes to Output
	File string

	// Output receives entries when File is empty; nil means stdout
	Output io.Writer

	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept
	MaxBackups int

	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int
}

// Logger implements interfaces.Logger on top of a logrus entry
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger from the given configuration
func New(cfg Config) *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(output(cfg))

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	return &Logger{entry: logrus.NewEntry(base)}
}

// NewWithLogrus wraps an existing logrus logger
func NewWithLogrus(l *logrus.Logger) *Logger {
	return &Logger{entry: logrus.NewEntry(l)}
}

func output(cfg Config) io.Writer {
	if cfg.File == "" {
		if cfg.Output != nil {
			return cfg.Output
		}
		return os.Stdout
	}
	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 100
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
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

// With returns a child logger carrying the given fields
func (l *Logger) With(fields map[string]interface{}) interfaces.Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}
