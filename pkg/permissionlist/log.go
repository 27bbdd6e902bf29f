package permissionlist

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLogger writes human-readable info-level logs to stderr.
func DefaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("component", "permissionlist").
		Logger()
}
