package phrasekit

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/phrasekit/phrasekit/pkg/catalog"
	"github.com/phrasekit/phrasekit/pkg/errors"
	"github.com/phrasekit/phrasekit/pkg/logging"
	"github.com/phrasekit/phrasekit/pkg/message"
)

// Option is a function that configures a Manager instance.
type Option func(*config) error

// config holds the Manager construction-time configuration.
type config struct {
	source      string
	extractor   message.Extractor
	messages    []message.Message
	messagesSet bool
	messagesDir string

	translationsDir string
	locales         []string
	defaultLocale   string

	format     catalog.Format
	serializer catalog.Serializer

	out    io.Writer
	logger *zerolog.Logger
}

// defaultConfig returns the baseline configuration.
func defaultConfig() *config {
	return &config{
		defaultLocale: "en",
		format:        catalog.FormatJSON,
		out:           os.Stdout,
		logger:        logging.Default(),
	}
}

// validate enforces the construction-time invariants: exactly one message
// source and a translations directory, before any file I/O happens.
func (c *config) validate() error {
	sources := 0
	if c.source != "" {
		sources++
	}
	if c.messagesSet {
		sources++
	}
	if c.messagesDir != "" {
		sources++
	}
	switch {
	case sources == 0:
		return errors.NewConfigError("manager",
			"one of source, messages, or messagesDir must be provided",
			errors.ErrNoMessageSource)
	case sources > 1:
		return errors.NewValidationError("source", nil,
			"source, messages, and messagesDir are mutually exclusive")
	}

	if c.translationsDir == "" {
		return errors.NewValidationError("translationsDir", nil, "translationsDir is required")
	}
	if len(c.locales) == 0 {
		return errors.NewValidationError("locales", nil, "at least one locale is required")
	}
	return nil
}

// WithSource configures a glob pattern of source files to extract messages
// from. Requires an extractor (see WithExtractor); the missing-extractor
// error surfaces on reconciliation, not at construction.
func WithSource(pattern string) Option {
	return func(c *config) error {
		c.source = pattern
		return nil
	}
}

// WithExtractor installs the extraction collaborator used with WithSource.
func WithExtractor(extractor message.Extractor) Option {
	return func(c *config) error {
		c.extractor = extractor
		return nil
	}
}

// WithMessages supplies the message list directly, without any extraction.
func WithMessages(msgs []message.Message) Option {
	return func(c *config) error {
		c.messages = msgs
		c.messagesSet = true
		return nil
	}
}

// WithMessagesDir configures a directory (or glob) of JSON files, each an
// array of {id, defaultMessage} objects, concatenated in glob order.
func WithMessagesDir(dir string) Option {
	return func(c *config) error {
		c.messagesDir = dir
		return nil
	}
}

// WithTranslationsDir configures the root directory for reading and writing
// per-locale translation files. Required.
func WithTranslationsDir(dir string) Option {
	return func(c *config) error {
		c.translationsDir = dir
		return nil
	}
}

// WithLocales configures the ordered list of locales to reconcile. Required.
func WithLocales(locales ...string) Option {
	return func(c *config) error {
		c.locales = locales
		return nil
	}
}

// WithDefaultLocale configures the locale treated as the authoritative
// source of default text. Defaults to "en".
func WithDefaultLocale(locale string) Option {
	return func(c *config) error {
		c.defaultLocale = locale
		return nil
	}
}

// WithFormat configures the translation file format. Defaults to JSON.
func WithFormat(format catalog.Format) Option {
	return func(c *config) error {
		c.format = format
		return nil
	}
}

// WithSerializer overrides how translation mappings are rendered to file
// bytes, e.g. catalog.SortedJSON for alphabetically sorted output.
func WithSerializer(serializer catalog.Serializer) Option {
	return func(c *config) error {
		c.serializer = serializer
		return nil
	}
}

// WithOutput redirects report output. Defaults to standard output.
func WithOutput(w io.Writer) Option {
	return func(c *config) error {
		c.out = w
		return nil
	}
}

// WithLogger overrides the logger used by the Manager.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
