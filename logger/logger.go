package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// New writes JSON records at or above level to w.
func New(service string, w io.Writer, level string) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New("", io.Discard, "error")
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (l *Logger) Debug(action, sessionID, message string, attrs ...slog.Attr) {
	l.log(slog.LevelDebug, action, sessionID, message, attrs)
}

func (l *Logger) Info(action, sessionID, message string, attrs ...slog.Attr) {
	l.log(slog.LevelInfo, action, sessionID, message, attrs)
}

func (l *Logger) Warn(action, sessionID, message string, attrs ...slog.Attr) {
	l.log(slog.LevelWarn, action, sessionID, message, attrs)
}

func (l *Logger) Error(action, sessionID, message string, err error, attrs ...slog.Attr) {
	if err != nil {
		attrs = append(attrs, slog.Group("error", slog.String("msg", err.Error())))
	}
	l.log(slog.LevelError, action, sessionID, message, attrs)
}

func (l *Logger) log(level slog.Level, action, sessionID, message string, attrs []slog.Attr) {
	base := []slog.Attr{
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("session_id", sessionID),
	}
	l.handler.LogAttrs(context.Background(), level, message, append(base, attrs...)...)
}
