package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLogLevel overrides the log level when no flag is given.
const EnvLogLevel = "POMOFADE_LOG_LEVEL"

// New builds a timestamped logger writing to w at the named level.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pomofade",
	})
	return logger
}

// FromEnv builds a stderr logger, preferring level and then $POMOFADE_LOG_LEVEL.
func FromEnv(level string) *log.Logger {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	return New(os.Stderr, level)
}

// ParseLevel maps a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}
	parsed, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}
