package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/phrasekit/phrasekit"
	"github.com/phrasekit/phrasekit/internal/cmd/output"
)

// NewUpdateCommand creates the update command.
func (a *App) NewUpdateCommand() *cobra.Command {
	var (
		dry      bool
		short    bool
		markdown string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Reconcile translation files and write the results",
		Long: `Update reconciles every locale's translation file against the current
message template and writes the merged files back to the translations
directory, creating it (and any missing locale files) on demand.

The diff report is printed before writing: keys added, keys removed, and
entries still carrying the default text.`,
		Example: `  phrasekit update                          # Reconcile and write all locales
  phrasekit update --dry                    # Preview changes without writing
  phrasekit update --short                  # Summary lines only
  phrasekit update --markdown report.md     # Also write a Markdown report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := a.Manager()
			if err != nil {
				return err
			}

			if err := manager.Report(phrasekit.ReportOptions{Short: short}); err != nil {
				return err
			}
			if markdown != "" {
				if err := writeMarkdownReport(markdown, manager); err != nil {
					return err
				}
			}

			if dry {
				a.logger.Info().Msg("dry run, not writing translation files")
				return nil
			}
			if err := manager.WriteFiles(); err != nil {
				return err
			}
			a.logger.Info().
				Int("locales", len(manager.Results())).
				Str("dir", a.config.TranslationsDir).
				Msg("translation files written")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dry, "dry", false, "preview changes without writing files")
	cmd.Flags().BoolVar(&short, "short", false, "suppress per-key listings")
	cmd.Flags().StringVar(&markdown, "markdown", "", "write a Markdown report to the given path")

	return cmd
}

// writeMarkdownReport renders the Markdown report to a file.
func writeMarkdownReport(path string, manager phrasekit.Manager) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return output.WriteMarkdownReport(f, manager.Results())
}
