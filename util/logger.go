package util

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global zerolog logger. Production writes JSON
// lines; every other environment gets the human readable console writer.
func SetupLogger(appEnv string) {
	log.Logger = newLogger(appEnv, os.Stdout)
}

func newLogger(appEnv string, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch appEnv {
	case "production":
	case "test":
		level = zerolog.WarnLevel
	default:
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
