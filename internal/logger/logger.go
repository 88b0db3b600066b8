// Package logger builds the zerolog logger shared by the catalog.
package logger

import (
	"io"
	"time"

	"bookcatalog/internal/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w in the configured format and level.
func New(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	out := w
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("env", cfg.Env).
		Logger()
}

// NewSessionID returns a fresh id for one interactive session.
func NewSessionID() string {
	return uuid.New().String()
}

// WithSession tags every entry of l with the session id.
func WithSession(l zerolog.Logger, sessionID string) zerolog.Logger {
	return l.With().Str("session_id", sessionID).Logger()
}
