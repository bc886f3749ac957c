package logging_test

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/karyolab/synlink/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig creates logger with config", func(t *testing.T) {
		tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
		assert.NoError(t, err)
		defer tmpfile.Close()

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:     "debug",
			Format:    "json",
			Output:    tmpfile.Name(),
			AddCaller: true,
		})
		logger.Info().Msg("test message")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		assert.Contains(t, string(content), "test message")
		assert.Contains(t, string(content), "info")
	})

	t.Run("Configure sets global logger from config", func(t *testing.T) {
		tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
		assert.NoError(t, err)
		defer tmpfile.Close()

		logging.Configure(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: tmpfile.Name(),
		})

		logging.Debug().Msg("debug message")
		logging.Info().Msg("info message")
		logging.Warn().Msg("warn message")
		logging.Error().Msg("error message")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		output := string(content)
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("ConfigureFromEnv reads from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")

		logging.ConfigureFromEnv()
	})

	t.Run("console format configuration", func(t *testing.T) {
		tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
		assert.NoError(t, err)
		defer tmpfile.Close()

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:   "info",
			Format:  "console",
			Output:  tmpfile.Name(),
			NoColor: true,
		})
		logger.Info().Str("chr", "chr1").Msg("console test")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "chr1")
	})

	t.Run("default fields appear in every entry", func(t *testing.T) {
		tmpfile, err := os.CreateTemp(t.TempDir(), "test-log-*.txt")
		assert.NoError(t, err)
		defer tmpfile.Close()

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "info",
			Format: "json",
			Output: tmpfile.Name(),
			Fields: map[string]any{"tool": "synlink"},
		})
		logger.Info().Msg("first")
		logger.Info().Msg("second")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		assert.Equal(t, 2, strings.Count(string(content), `"tool":"synlink"`))
	})
}
