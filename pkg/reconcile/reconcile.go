// Package reconcile implements the per-locale merge of prior translation
// files against the current message template. It is the deterministic core
// of phrasekit: given identical inputs it produces identical results, and it
// never mutates its inputs.
package reconcile

import (
	"github.com/phrasekit/phrasekit/pkg/message"
	"github.com/phrasekit/phrasekit/pkg/ordered"
)

// PriorFunc returns the prior translation mapping for a locale. A nil map
// with a nil error means the locale file is absent and the locale will be
// created from scratch. Any error aborts the whole reconciliation.
type PriorFunc func(locale string) (*ordered.Map, error)

// Reconcile computes one Result per locale, in the given locale order.
// All prior files are loaded up front; a load failure aborts before any
// result is produced.
func Reconcile(tmpl *message.Template, locales []string, defaultLocale string, prior PriorFunc) ([]Result, error) {
	files := make([]*ordered.Map, len(locales))
	for i, locale := range locales {
		file, err := prior(locale)
		if err != nil {
			return nil, err
		}
		files[i] = file
	}

	results := make([]Result, 0, len(locales))
	for i, locale := range locales {
		results = append(results, Locale(tmpl, locale, locale == defaultLocale, files[i]))
	}
	return results, nil
}

// Locale reconciles a single locale's prior file against the template.
// file may be nil, meaning the locale file is absent.
//
// The translation mapping carries exactly the template's keys in template
// order: existing values are kept, missing keys are filled with the default
// text (default locale) or the empty string. Keys only present in the prior
// file are reported as removed, in file order, and dropped.
func Locale(tmpl *message.Template, locale string, isDefault bool, file *ordered.Map) Result {
	result := Result{
		Locale:       locale,
		Default:      isDefault,
		Translation:  ordered.NewMap(),
		Added:        ordered.NewMap(),
		Removed:      ordered.NewMap(),
		Untranslated: ordered.NewMap(),
	}
	if file == nil {
		file = ordered.NewMap()
	}

	tmpl.Range(func(key, defaultText string) bool {
		if existing, ok := file.Get(key); ok {
			result.Translation.Set(key, existing)
			// Identical to the default text on a non-default locale means
			// the entry was most likely never translated.
			if !isDefault && existing == defaultText {
				result.Untranslated.Set(key, existing)
			}
			return true
		}

		value := ""
		if isDefault {
			value = defaultText
		}
		result.Translation.Set(key, value)
		result.Added.Set(key, value)
		return true
	})

	file.Range(func(key, value string) bool {
		if !tmpl.Has(key) {
			result.Removed.Set(key, value)
		}
		return true
	})

	return result
}
