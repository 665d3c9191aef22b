package poslog

import (
	"github.com/ninja-software/log_helpers"
	"github.com/rs/zerolog"
)

// L is the process-wide logger, set once by New at startup.
var L *zerolog.Logger

func New(environment, level string) *zerolog.Logger {
	l := log_helpers.LoggerInitZero(environment, level)
	L = l
	L.Info().Msg("zerolog initialised")
	return l
}
