// Package app wires the synlink CLI together: configuration, the
// application logger and the cobra command tree.
package app

import (
	"github.com/rs/zerolog"
)

// buildInfo identifies a release binary. cmd/synlink stamps the fields
// in at link time.
type buildInfo struct {
	version string
	commit  string
	date    string
	builtBy string
}

// App carries the dependencies shared by every synlink command.
type App struct {
	build  buildInfo
	config *Config
	logger *zerolog.Logger
}

// New loads the configuration, builds the logger from it and returns
// the application. Options run last and may replace either.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(config)

	app := &App{
		build:  buildInfo{version: version, commit: commit, date: date, builtBy: builtBy},
		config: config,
		logger: &logger,
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Version reports the release version.
func (a *App) Version() string { return a.build.version }

// Commit reports the git commit the binary was built from.
func (a *App) Commit() string { return a.build.commit }

// Date reports the build date.
func (a *App) Date() string { return a.build.date }

// BuiltBy reports what produced the binary.
func (a *App) BuiltBy() string { return a.build.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Option adjusts an App during New.
type Option func(*App) error

// WithConfig replaces the loaded configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
