// Package logging provides structured logging for the synlink pipeline using zerolog.
// Console output is used when stderr is a terminal, JSON otherwise, so
// interactive runs stay readable and scripted runs stay parseable.
//
// Example usage:
//
//	// Get the default logger
//	log := logging.Default()
//	log.Info().Str("file", "karyotype1.txt").Msg("Loading karyotype")
//
//	// Create a logger with context
//	ctx := logging.WithLogger(context.Background(), log)
//	ctxLog := logging.FromContext(ctx)
//	ctxLog.Debug().Msg("Using logger from context")
//
//	// Add structured fields
//	log.Error().
//	    Err(err).
//	    Str("chr", "scaffold_12").
//	    Int("line", 14).
//	    Msg("Failed to parse karyotype row")
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the process-wide logger. Commands replace it once
// their flags are parsed; everything before that uses the environment
// driven defaults below.
var defaultLogger zerolog.Logger

func init() {
	cfg := &Config{
		Level:   envOr("LOG_LEVEL", "info"),
		Format:  envOr("LOG_FORMAT", "auto"),
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
	if cfg.Level == "info" && os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	defaultLogger = NewLoggerFromConfig(cfg)
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // Also update zerolog's global logger
}

// Debug starts a new debug level log event on the default logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event on the default logger.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// stderrIsTerminal reports whether stderr is attached to a terminal.
func stderrIsTerminal() bool {
	info, err := os.Stderr.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// envOr returns the environment variable value, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
