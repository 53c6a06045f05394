package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = time.RFC3339

// newLogger returns a console logger writing to w. An unknown level
// falls back to info, and is reported once on the new logger.
func newLogger(w io.Writer, level string) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: consoleTimeFormat,
	}
	log := zerolog.New(out).With().Timestamp().Logger().Level(lvl)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using %s", level, lvl)
	}
	return &log
}
