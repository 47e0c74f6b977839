package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel selects the log level; the default is warn
const EnvLevel = "RELCHECK_LOG_LEVEL"

// New returns a console logger writing to w at the given level.
// Unknown or empty levels fall back to warn.
func New(w io.Writer, level string) zerolog.Logger {
	name := strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		lvl = zerolog.WarnLevel
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: os.Getenv("NO_COLOR") != ""}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

// FromEnv returns a stderr logger at the level named by EnvLevel
func FromEnv() zerolog.Logger {
	return New(os.Stderr, os.Getenv(EnvLevel))
}
