package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrasekit/phrasekit/internal/cmd/output"
	"github.com/phrasekit/phrasekit/pkg/reconcile"
)

// NewCheckCommand creates the check command.
func (a *App) NewCheckCommand() *cobra.Command {
	var markdown string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify translation files are up to date",
		Long: `Check reconciles every locale against the current message template and
prints a per-locale summary, but never writes files. It exits non-zero
when any locale has keys to add, keys to remove, or untranslated
entries, which makes it suitable for CI pipelines.`,
		Example: `  phrasekit check                           # Table summary, exit 1 when dirty
  phrasekit check -o json                   # Machine-readable summary
  phrasekit check --markdown report.md      # Also write a Markdown report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := a.Manager()
			if err != nil {
				return err
			}

			results := manager.Results()
			if err := a.renderSummaries(results); err != nil {
				return err
			}
			if markdown != "" {
				if err := writeMarkdownReport(markdown, manager); err != nil {
					return err
				}
			}

			dirty := 0
			for _, r := range results {
				if !r.Clean() {
					dirty++
				}
			}
			if dirty > 0 {
				return fmt.Errorf("translations out of date in %d of %d locales, run `phrasekit update`", dirty, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&markdown, "markdown", "", "write a Markdown report to the given path")

	return cmd
}

// renderSummaries prints per-locale summaries in the configured output format.
func (a *App) renderSummaries(results []reconcile.Result) error {
	format := output.Format(a.config.Output)
	if a.config.Output == "" {
		format = output.DefaultFormat()
	}

	summaries := make([]reconcile.Summary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, r.Summary())
	}

	formatter := output.NewFormatter(format)
	if format == output.FormatTable {
		return formatter.Format(os.Stdout, output.SummariesToTableData(summaries))
	}
	return formatter.Format(os.Stdout, summaries)
}
