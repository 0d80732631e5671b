package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	Output  string

	// Config file
	ConfigFile string

	// Reconciliation configuration
	MessagesDir     string
	TranslationsDir string
	Locales         []string
	DefaultLocale   string
	FileFormat      string
	SortKeys        bool

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by cobra)
// 2. Environment variables (PHRASEKIT_*)
// 3. .env files
// 4. Config file (.phrasekit.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first, before Viper env binding.
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("PHRASEKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("default_locale", "en")
	v.SetDefault("file_format", "json")

	configFile := os.Getenv("PHRASEKIT_CONFIG")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".phrasekit")
	}

	// A missing config file is fine; a malformed one is not.
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && configFile != "" {
			return nil, err
		}
	}

	return &Config{
		ConfigFile: v.ConfigFileUsed(),

		MessagesDir:     v.GetString("messages_dir"),
		TranslationsDir: v.GetString("translations_dir"),
		Locales:         v.GetStringSlice("locales"),
		DefaultLocale:   v.GetString("default_locale"),
		FileFormat:      v.GetString("file_format"),
		SortKeys:        v.GetBool("sort_keys"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}, nil
}

// UpdateFromFlags applies parsed global flag values to the config.
func (c *Config) UpdateFromFlags(verbose, quiet bool, output, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env files from the working directory if present.
// Existing environment variables are never overwritten.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}
