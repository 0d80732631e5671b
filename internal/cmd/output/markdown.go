package output

import (
	"io"

	md "github.com/nao1215/markdown"

	"github.com/phrasekit/phrasekit/pkg/ordered"
	"github.com/phrasekit/phrasekit/pkg/reconcile"
)

// WriteMarkdownReport renders the reconciliation results as a Markdown
// document, suitable for posting on a pull request.
func WriteMarkdownReport(w io.Writer, results []reconcile.Result) error {
	doc := md.NewMarkdown(w)
	doc.H1("Translation report")

	summaryData := make([]reconcile.Summary, 0, len(results))
	for i := range results {
		summaryData = append(summaryData, results[i].Summary())
	}
	table := SummariesToTableData(summaryData)
	doc.Table(md.TableSet{
		Header: table.Headers,
		Rows:   table.Rows,
	})

	for i := range results {
		r := &results[i]
		if r.Clean() {
			continue
		}
		doc.H2(r.Locale)
		markdownSection(doc, "Added", r.Added)
		markdownSection(doc, "Removed", r.Removed)
		markdownSection(doc, "Untranslated", r.Untranslated)
	}

	return doc.Build()
}

// markdownSection renders one change category as a key/value table.
func markdownSection(doc *md.Markdown, title string, entries *ordered.Map) {
	if entries.Len() == 0 {
		return
	}
	doc.H3(title)
	rows := make([][]string, 0, entries.Len())
	entries.Range(func(key, value string) bool {
		if value == "" {
			value = "(empty)"
		}
		rows = append(rows, []string{md.Code(key), value})
		return true
	})
	doc.Table(md.TableSet{
		Header: []string{"key", "value"},
		Rows:   rows,
	})
}
