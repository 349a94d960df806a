package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// envLogLevel overrides the default log level (debug, info, warn, error).
	envLogLevel = "CARBONCALC_LOG_LEVEL"

	// envRegion sets the default region for factor resolution when neither
	// the input file nor the --region flag provides one.
	envRegion = "CARBONCALC_REGION"
)

// newLogger builds the CLI logger writing to stderr. Invalid level values
// warn and fall back to the default rather than failing the command.
func newLogger() zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.WarnLevel)

	raw := os.Getenv(envLogLevel)
	if raw == "" {
		return logger
	}

	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		logger.Warn().Str("value", raw).Msgf("invalid %s, using warn", envLogLevel)
		return logger
	}
	return logger.Level(level)
}

// envDefaultRegion returns the region from the environment, or empty if
// unset. Empty defers to the engine's own default.
func envDefaultRegion() string {
	return strings.TrimSpace(os.Getenv(envRegion))
}
