package app

import (
	"github.com/rs/zerolog"

	"github.com/phrasekit/phrasekit/pkg/logging"
)

// NewLogger creates a configured logger based on the application config.
// Log level precedence (highest to lowest):
//  1. --log-level flag (explicit always wins)
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. PHRASEKIT_LOG_LEVEL environment variable
//  5. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	return logging.NewLoggerFromConfig(&logging.Config{
		Level:  determineLogLevel(config),
		Format: config.LogFormat,
		Output: "stderr",
	})
}

// determineLogLevel resolves the log level using the precedence rules.
func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		return config.LogLevel
	}
	if config.Verbose && config.Quiet {
		// Both specified: quiet wins as the more restrictive choice.
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}
	return "info"
}
