package reconcile

import (
	"fmt"
	"strings"

	"github.com/phrasekit/phrasekit/pkg/ordered"
)

// Result holds the reconciliation outcome for one locale.
type Result struct {
	// Locale is the locale identifier this result belongs to.
	Locale string

	// Default reports whether this locale is the default locale.
	Default bool

	// Translation is the new canonical mapping to persist: exactly the
	// template's keys, in template order.
	Translation *ordered.Map

	// Added contains the Translation entries whose key did not exist in the
	// prior file, in template order.
	Added *ordered.Map

	// Removed contains the prior file's entries whose key is absent from the
	// template, in file order. They are never written back.
	Removed *ordered.Map

	// Untranslated contains entries whose value still equals the template's
	// default text. Always empty for the default locale.
	Untranslated *ordered.Map
}

// Clean reports whether the locale needed no changes and has no
// untranslated entries.
func (r *Result) Clean() bool {
	return r.Added.Len() == 0 && r.Removed.Len() == 0 && r.Untranslated.Len() == 0
}

// Summary provides per-locale change counts for reporting.
type Summary struct {
	Locale       string `json:"locale"`
	Keys         int    `json:"keys"`
	Added        int    `json:"added"`
	Removed      int    `json:"removed"`
	Untranslated int    `json:"untranslated"`
	Clean        bool   `json:"clean"`
}

// Summary computes the summary statistics for the result.
func (r *Result) Summary() Summary {
	return Summary{
		Locale:       r.Locale,
		Keys:         r.Translation.Len(),
		Added:        r.Added.Len(),
		Removed:      r.Removed.Len(),
		Untranslated: r.Untranslated.Len(),
		Clean:        r.Clean(),
	}
}

// String returns a one-line human-readable summary of the result.
func (r *Result) String() string {
	if r.Clean() {
		return fmt.Sprintf("%s: clean (%d keys)", r.Locale, r.Translation.Len())
	}

	var parts []string
	if n := r.Added.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d added", n))
	}
	if n := r.Removed.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", n))
	}
	if n := r.Untranslated.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d untranslated", n))
	}
	return fmt.Sprintf("%s: %s", r.Locale, strings.Join(parts, ", "))
}
