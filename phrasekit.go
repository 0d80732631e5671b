// Package phrasekit reconciles a canonical set of localizable message keys
// against per-locale translation files, producing updated files and a
// human-readable diff report.
//
// A Manager is built from a message source (an extraction glob, a literal
// message list, or a directory of extracted message files) plus a
// translations directory and a locale list. Construction validates the
// configuration, then eagerly loads the template and every locale's prior
// file and computes one reconciliation result per locale.
package phrasekit

import (
	"golang.org/x/text/language"

	"github.com/phrasekit/phrasekit/pkg/catalog"
	"github.com/phrasekit/phrasekit/pkg/errors"
	"github.com/phrasekit/phrasekit/pkg/message"
	"github.com/phrasekit/phrasekit/pkg/ordered"
	"github.com/phrasekit/phrasekit/pkg/reconcile"
)

// Manager reconciles translation files against the message template.
type Manager interface {
	// Reload re-runs extraction and reconciliation against the current
	// on-disk translation files, replacing prior results.
	Reload() error

	// WriteFiles persists every locale's translation mapping to its file.
	WriteFiles() error

	// Report prints the rendered report per locale to the configured
	// output stream (standard output by default).
	Report(opts ReportOptions) error

	// Results returns the reconciliation results for programmatic
	// consumption. The returned slice is a copy; results are not
	// recomputed until Reload is called.
	Results() []reconcile.Result
}

// manager is the internal implementation of the Manager interface.
type manager struct {
	config   *config
	template *message.Template
	results  []reconcile.Result
}

// New creates a Manager with the given options and eagerly reconciles.
// Configuration validation happens before any file I/O.
func New(opts ...Option) (Manager, error) {
	m := &manager{
		config: defaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(m.config); err != nil {
			return nil, errors.NewConfigError("manager", "applying options", err)
		}
	}

	if err := m.config.validate(); err != nil {
		return nil, err
	}
	m.checkLocaleTags()

	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload re-runs extraction and reconciliation against current on-disk state.
func (m *manager) Reload() error {
	msgs, err := m.loadMessages()
	if err != nil {
		return err
	}
	m.template = message.NewTemplate(msgs)

	results, err := reconcile.Reconcile(
		m.template,
		m.config.locales,
		m.config.defaultLocale,
		func(locale string) (*ordered.Map, error) {
			return catalog.Load(m.config.translationsDir, locale, m.config.format)
		},
	)
	if err != nil {
		return err
	}
	m.results = results

	for i := range m.results {
		r := &m.results[i]
		m.config.logger.Debug().
			Str("locale", r.Locale).
			Int("added", r.Added.Len()).
			Int("removed", r.Removed.Len()).
			Int("untranslated", r.Untranslated.Len()).
			Msg("reconciled locale")
	}
	return nil
}

// WriteFiles persists every locale's translation mapping.
func (m *manager) WriteFiles() error {
	for i := range m.results {
		r := &m.results[i]
		if err := catalog.Write(m.config.translationsDir, r.Locale, m.config.format, r.Translation, m.config.serializer); err != nil {
			return err
		}
		m.config.logger.Debug().
			Str("path", catalog.Path(m.config.translationsDir, r.Locale, m.config.format)).
			Msg("wrote translation file")
	}
	return nil
}

// Results returns a copy of the reconciliation results.
func (m *manager) Results() []reconcile.Result {
	results := make([]reconcile.Result, len(m.results))
	copy(results, m.results)
	return results
}

// loadMessages resolves the configured message source into a message list.
func (m *manager) loadMessages() ([]message.Message, error) {
	switch {
	case m.config.source != "":
		if m.config.extractor == nil {
			return nil, errors.NewConfigError("manager",
				"a source glob is configured but no extractor is installed",
				errors.ErrExtractorRequired)
		}
		return m.config.extractor(m.config.source)
	case m.config.messagesDir != "":
		return message.LoadDir(m.config.messagesDir)
	default:
		return m.config.messages, nil
	}
}

// checkLocaleTags warns about locale identifiers that are not well-formed
// BCP 47 tags. Locales stay opaque: a bad tag is never an error.
func (m *manager) checkLocaleTags() {
	for _, locale := range m.config.locales {
		if _, err := language.Parse(locale); err != nil {
			m.config.logger.Warn().
				Str("locale", locale).
				Msg("locale is not a well-formed BCP 47 tag")
		}
	}
}
