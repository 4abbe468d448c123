// Package logger wraps zap behind a small structured-logging interface so
// simulation packages can log without depending on a concrete backend.
package logger

// Logger is the structured logging surface shared across the module.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is one structured log field.
type Field struct {
	Key   string
	Value any
}
