package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a console logger on the global zerolog instance so that
// startup is logged before the configuration is read.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = newLogger(os.Stdout, "console")
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Configure applies LOG_LEVEL and LOG_FORMAT. An unknown level keeps info.
func Configure(level, format string) {
	ConfigureOutput(os.Stdout, level, format)
}

func ConfigureOutput(w io.Writer, level, format string) {
	log.Logger = newLogger(w, format)

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func newLogger(w io.Writer, format string) zerolog.Logger {
	if strings.EqualFold(format, "json") {
		return zerolog.New(w).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}
