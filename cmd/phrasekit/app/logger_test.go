package app

import (
	"testing"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default level when no flags set",
			config: &Config{
				LogLevel: "",
				Verbose:  false,
				Quiet:    false,
			},
			expected: "info",
		},
		{
			name: "verbose flag sets debug",
			config: &Config{
				LogLevel: "",
				Verbose:  true,
				Quiet:    false,
			},
			expected: "debug",
		},
		{
			name: "quiet flag sets warn",
			config: &Config{
				LogLevel: "",
				Verbose:  false,
				Quiet:    true,
			},
			expected: "warn",
		},
		{
			name: "explicit log-level overrides verbose",
			config: &Config{
				LogLevel: "error",
				Verbose:  true,
				Quiet:    false,
			},
			expected: "error",
		},
		{
			name: "explicit log-level overrides quiet",
			config: &Config{
				LogLevel: "trace",
				Verbose:  false,
				Quiet:    true,
			},
			expected: "trace",
		},
		{
			name: "both verbose and quiet prefers quiet",
			config: &Config{
				LogLevel: "",
				Verbose:  true,
				Quiet:    true,
			},
			expected: "warn",
		},
		{
			name: "env-provided level read from config",
			config: &Config{
				LogLevel: "debug",
				Verbose:  false,
				Quiet:    false,
			},
			expected: "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := determineLogLevel(tt.config)
			if result != tt.expected {
				t.Errorf("determineLogLevel() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

// TestNewLogger verifies logger construction does not panic for any
// combination of level and format.
func TestNewLogger(t *testing.T) {
	configs := []*Config{
		{},
		{Verbose: true},
		{Quiet: true},
		{LogLevel: "trace", LogFormat: "json"},
		{LogLevel: "invalid", LogFormat: "console"},
	}

	for _, config := range configs {
		logger := NewLogger(config)
		logger.Debug().Msg("probe")
	}
}
