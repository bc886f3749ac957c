package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every command.
type Config struct {
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	ConfigFile string

	// LogLevel carries the --log-level flag value only. The LOG_LEVEL
	// environment variable applies further down the precedence chain.
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig resolves the configuration from, weakest first: defaults,
// ~/.synlink.yaml (or ./.synlink.yaml), .env files and real environment
// variables. The root command binds its global flags over the result,
// so flags the user passes win over all of these.
func LoadConfig() (*Config, error) {
	// godotenv never overrides variables that are already set, so the
	// local file has to load before the shared one to win.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".synlink")
	}
	_ = viper.ReadInConfig() // a missing config file is fine

	return &Config{
		Verbose:    viper.GetBool("verbose"),
		Quiet:      viper.GetBool("quiet"),
		NoColor:    viper.GetBool("no-color"),
		Format:     viper.GetString("format"),
		ConfigFile: viper.ConfigFileUsed(),
		LogFormat:  envOr("LOG_FORMAT", "auto"),
		LogOutput:  envOr("LOG_OUTPUT", "stderr"),
	}, nil
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
