// Package middleware provides logging decoration for console operations.
package middleware

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-petr/mini-bank/pkg/configpkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// GetLogger builds the application logger.
// Logs go to stderr so they never interleave with console output on stdout.
func GetLogger(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var (
		output   io.Writer = os.Stderr
		logLevel           = zerolog.InfoLevel // default to INFO
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environement == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// WithOperation returns a context carrying a child logger annotated with the
// menu operation name and a unique operation id, so every log line produced
// while handling one menu action can be correlated.
func WithOperation(ctx context.Context, logger zerolog.Logger, operation string) context.Context {
	l := logger.With().
		Str("operation", operation).
		Str("operation_id", uuid.NewString()).
		Logger()

	return l.WithContext(ctx)
}
