// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Emits structured JSON log lines with a configurable minimum level

package logrus

import (
	"os"

	sirupsen "github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	log *sirupsen.Logger
}

// NewLogger creates a logrus-backed logger writing JSON lines to stdout.
// Unknown level names fall back to info.
func NewLogger(level string) *Logger {
	log := sirupsen.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&sirupsen.JSONFormatter{})

	parsed, err := sirupsen.ParseLevel(level)
	if err != nil {
		parsed = sirupsen.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Error(msg)
}
