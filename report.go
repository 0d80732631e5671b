package phrasekit

import (
	"fmt"
	"io"

	"github.com/phrasekit/phrasekit/pkg/ordered"
	"github.com/phrasekit/phrasekit/pkg/reconcile"
)

// EmptyValueMarker is printed in place of an empty translation value so that
// blank entries are visible in reports.
const EmptyValueMarker = "<empty>"

// ReportOptions control report rendering.
type ReportOptions struct {
	// Short suppresses the per-key listings and emits only the summary
	// line per locale.
	Short bool
}

// Report prints the rendered report per locale to the configured output.
func (m *manager) Report(opts ReportOptions) error {
	for i := range m.results {
		if err := renderResult(m.config.out, &m.results[i], opts); err != nil {
			return err
		}
	}
	return nil
}

// renderResult writes one locale's report section.
func renderResult(w io.Writer, r *reconcile.Result, opts ReportOptions) error {
	if _, err := fmt.Fprintln(w, r.String()); err != nil {
		return err
	}
	if opts.Short || r.Clean() {
		return nil
	}

	if err := renderSection(w, "Added", r.Added); err != nil {
		return err
	}
	if err := renderSection(w, "Removed", r.Removed); err != nil {
		return err
	}
	if err := renderSection(w, "Untranslated", r.Untranslated); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// renderSection writes one change category as an ordered key/value listing.
// Empty categories are omitted.
func renderSection(w io.Writer, title string, entries *ordered.Map) error {
	if entries.Len() == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  %s:\n", title); err != nil {
		return err
	}
	var writeErr error
	entries.Range(func(key, value string) bool {
		if value == "" {
			value = EmptyValueMarker
		}
		_, writeErr = fmt.Fprintf(w, "    %s: %s\n", key, value)
		return writeErr == nil
	})
	return writeErr
}
