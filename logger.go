package kotodame

import (
	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
	// Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
)
