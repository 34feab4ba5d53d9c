// Package log provides the application's logging facade, a thin layer
// over logrus with helpers for attaching typed application errors as
// structured fields.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"notable/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a structured logging field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger
type Logger struct {
	lr     *logrus.Logger
	fields logrus.Fields
}

// Option configures a Logger
type Option func(*logrus.Logger)

// WithOutput directs log output to w
func WithOutput(w io.Writer) Option {
	return func(lr *logrus.Logger) {
		lr.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON output
func WithJSON() Option {
	return func(lr *logrus.Logger) {
		lr.SetFormatter(&logrus.JSONFormatter{})
	}
}

// NewLogger creates a new logger writing to stderr in text format
func NewLogger(opts ...Option) *Logger {
	lr := logrus.New()
	lr.SetOutput(os.Stderr)
	lr.SetLevel(logrus.DebugLevel)
	lr.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	for _, opt := range opts {
		opt(lr)
	}
	return &Logger{lr: lr, fields: logrus.Fields{}}
}

// Configure replaces the package-level logger
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug enables or disables debug logging globally
func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a logger that includes the given fields on every entry
func (l *Logger) With(fields ...Field) *Logger {
	merged := logrus.Fields{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &Logger{lr: l.lr, fields: merged}
}

func (l *Logger) entry() *logrus.Entry {
	return l.lr.WithFields(l.fields)
}

// Info logs an informational message
func (l *Logger) Info(msg string) {
	l.entry().Info(msg)
}

// Infof logs a formatted informational message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry().Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.entry().Warn(msg)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.entry().Error(msg)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

// Debug logs a debug message when debug logging is enabled
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry().Debug(msg)
	}
}

// Debugf logs a formatted debug message when debug logging is enabled
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry().Debugf(format, args...)
	}
}

// Info logs an informational message using the global logger
func Info(msg string) { logger.Info(msg) }

// Infof logs a formatted informational message using the global logger
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warn logs a warning message using the global logger
func Warn(msg string) { logger.Warn(msg) }

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

// Error logs an error message using the global logger
func Error(msg string) { logger.Error(msg) }

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// Debug logs a debug message when debug logging is enabled
func Debug(msg string) { logger.Debug(msg) }

// Debugf logs a formatted debug message when debug logging is enabled
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// LogWithFields returns a logger carrying the given fields
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns a logger carrying structured fields extracted
// from a typed application error: the message, the error kind, and any
// context (path, template, command, config param) the error carries.
func LogWithError(err error) *Logger {
	l := logger.With(F("error", errString(err)))
	if err == nil {
		return l
	}

	type kinder interface {
		Kind() errors.ErrorKind
	}
	var k kinder
	if errors.As(err, &k) {
		l = l.With(F("error_kind", int(k.Kind())))
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		l = l.With(F("path", fileErr.Path()))
	}
	var cfgErr *errors.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Param() != "" {
		l = l.With(F("param", cfgErr.Param()))
	}
	var tmplErr *errors.TemplateError
	if errors.As(err, &tmplErr) && tmplErr.Template() != "" {
		l = l.With(F("template", tmplErr.Template()))
	}
	var cmdErr *errors.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Command() != "" {
		l = l.With(F("command", cmdErr.Command()))
	}
	return l
}

// LogError logs an error with its structured context attached
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
