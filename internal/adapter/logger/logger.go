package logger

import (
	"os"

	"github.com/rs/zerolog"
)

type Logger interface {
	Info(action, message, requestID string, details map[string]interface{})
	Debug(action, message, requestID string, details map[string]interface{})
	Error(action, message, requestID string, details map[string]interface{}, err error)
}

type zerologLogger struct {
	zl zerolog.Logger
}

func New(service string) Logger {
	hostname, _ := os.Hostname()
	zl := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Str("hostname", hostname).
		Logger()
	return &zerologLogger{zl: zl}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func (l *zerologLogger) Info(action, message, requestID string, details map[string]interface{}) {
	l.emit(l.zl.Info(), action, message, requestID, details)
}

func (l *zerologLogger) Debug(action, message, requestID string, details map[string]interface{}) {
	l.emit(l.zl.Debug(), action, message, requestID, details)
}

func (l *zerologLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	l.emit(l.zl.Error().Err(err), action, message, requestID, details)
}

func (l *zerologLogger) emit(ev *zerolog.Event, action, message, requestID string, details map[string]interface{}) {
	ev = ev.Str("action", action)
	if requestID != "" {
		ev = ev.Str("request_id", requestID)
	}
	if len(details) > 0 {
		ev = ev.Fields(details)
	}
	ev.Msg(message)
}
