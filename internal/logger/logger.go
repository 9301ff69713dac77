// Package logger configures logrus and hands out entries enriched with request identity.
package logger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"org-access-control/internal/identity"
)

// Logger wraps a logrus entry for structured logging with context support.
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger. format is "text" or "json".
func Setup(level, format string) error {
	return configure(logrus.StandardLogger(), level, format)
}

func configure(l *logrus.Logger, level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	l.SetLevel(lvl)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("logger: unknown format %q", format)
	}
	return nil
}

// New returns a logger backed by the standard logrus logger.
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// NewWithOutput returns a logger writing JSON to w at debug level. Used by tests that inspect log output.
func NewWithOutput(w io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{Entry: logrus.NewEntry(l)}
}

// WithContext returns the standard logger with the request caller attached.
func WithContext(ctx context.Context) *Logger {
	return New().FromContext(ctx)
}

// FromContext adds user_id from the request identity, when present.
func (l *Logger) FromContext(ctx context.Context) *Logger {
	if c, ok := identity.FromContext(ctx); ok {
		return l.WithField("user_id", c.UserID)
	}
	return l
}

// WithField adds a field to the logger.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError adds an error field to the logger.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
