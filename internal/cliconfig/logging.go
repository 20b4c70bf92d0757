package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

// Logger returns the process-wide console logger.
func Logger() zerolog.Logger {
	return logger
}
