package output

import (
	"strconv"

	"github.com/phrasekit/phrasekit/pkg/reconcile"
)

// SummariesToTableData shapes per-locale reconciliation summaries for the
// table formatter.
func SummariesToTableData(summaries []reconcile.Summary) Data {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		status := "dirty"
		if s.Clean {
			status = "clean"
		}
		rows = append(rows, []string{
			s.Locale,
			strconv.Itoa(s.Keys),
			strconv.Itoa(s.Added),
			strconv.Itoa(s.Removed),
			strconv.Itoa(s.Untranslated),
			status,
		})
	}
	return Data{
		Headers: []string{"locale", "keys", "added", "removed", "untranslated", "status"},
		Rows:    rows,
	}
}
