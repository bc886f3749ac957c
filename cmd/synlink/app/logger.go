package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/karyolab/synlink/pkg/logging"
)

// NewLogger builds the application logger from the configuration.
// Level precedence, highest first: --log-level, -v, -q, the LOG_LEVEL
// environment variable, then info.
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		AddCaller: level == "debug" || level == "trace",
	})
}

// determineLogLevel resolves the effective log level from flags and
// the environment.
func determineLogLevel(config *Config) string {
	switch {
	case config.LogLevel != "":
		// An explicit --log-level always wins
		validated := validateLogLevel(config.LogLevel)
		if validated != config.LogLevel {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, validated)
		}
		return validated
	case config.Verbose && config.Quiet:
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	case config.Verbose:
		return "debug"
	case config.Quiet:
		return "warn"
	}

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return validateLogLevel(env)
	}
	return "info"
}

// validateLogLevel returns level when it names a known level, or info
// as the safe fallback.
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	return "info"
}
