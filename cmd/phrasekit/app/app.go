// Package app provides the application context and dependency management
// for the phrasekit CLI. It centralizes configuration, logging, and the
// Manager instance behind a single App type.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/phrasekit/phrasekit"
	"github.com/phrasekit/phrasekit/pkg/catalog"
)

// App represents the phrasekit application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Manager instance (lazy-initialized, singleton)
	mu      sync.Mutex
	manager phrasekit.Manager
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Manager returns the phrasekit Manager, creating it lazily. Construction
// validates the configuration and eagerly reconciles, so any configuration
// or load error surfaces here.
func (a *App) Manager() (phrasekit.Manager, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.manager != nil {
		return a.manager, nil
	}

	format, err := catalog.ParseFormat(a.config.FileFormat)
	if err != nil {
		return nil, err
	}

	manager, err := phrasekit.New(a.managerOptions(format)...)
	if err != nil {
		return nil, err
	}
	a.manager = manager
	return manager, nil
}

// ResetManager drops the cached Manager so the next Manager call rebuilds
// it from scratch. Used by watch mode between runs.
func (a *App) ResetManager() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.manager = nil
}

// managerOptions translates the CLI configuration into Manager options.
func (a *App) managerOptions(format catalog.Format) []phrasekit.Option {
	opts := []phrasekit.Option{
		phrasekit.WithMessagesDir(a.config.MessagesDir),
		phrasekit.WithTranslationsDir(a.config.TranslationsDir),
		phrasekit.WithLocales(a.config.Locales...),
		phrasekit.WithDefaultLocale(a.config.DefaultLocale),
		phrasekit.WithFormat(format),
		phrasekit.WithLogger(a.logger),
	}
	if a.config.SortKeys && format == catalog.FormatJSON {
		opts = append(opts, phrasekit.WithSerializer(catalog.SortedJSON))
	}
	return opts
}
