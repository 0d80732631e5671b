package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the phrasekit CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "phrasekit",
		Short:   "Translation file reconciler",
		Version: a.version,
		Long: `Phrasekit keeps per-locale translation files in sync with the canonical
set of localizable message keys extracted from your application.

Each run compares the message template against every locale's translation
file, adds entries for new keys (default text for the default locale, empty
strings elsewhere), drops entries whose key no longer exists, and flags
entries that still carry the default text as untranslated. Manual
translations are never overwritten.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "summary output format: table, json, yaml")

	rootCmd.PersistentFlags().String("messages-dir", "", "directory or glob of extracted message files")
	rootCmd.PersistentFlags().String("translations-dir", "", "directory holding per-locale translation files")
	rootCmd.PersistentFlags().StringSlice("locales", nil, "ordered list of locales to reconcile")
	rootCmd.PersistentFlags().String("default-locale", "", "locale whose text equals the default message text")
	rootCmd.PersistentFlags().String("file-format", "", "translation file format: json, yaml")
	rootCmd.PersistentFlags().Bool("sort-keys", false, "write translation files with alphabetically sorted keys")

	rootCmd.SetVersionTemplate("phrasekit {{.Version}}\n")

	rootCmd.AddCommand(a.NewUpdateCommand())
	rootCmd.AddCommand(a.NewCheckCommand())
	rootCmd.AddCommand(a.NewWatchCommand())
	rootCmd.AddCommand(a.NewVersionCommand())

	return rootCmd
}

// setupCommand is called before any command runs. It folds parsed flag
// values into the config and reinitializes the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")
	output, _ := flags.GetString("output")
	logLevel, _ := flags.GetString("log-level")
	a.config.UpdateFromFlags(verbose, quiet, output, logLevel)

	if v, _ := flags.GetString("messages-dir"); v != "" {
		a.config.MessagesDir = v
	}
	if v, _ := flags.GetString("translations-dir"); v != "" {
		a.config.TranslationsDir = v
	}
	if v, _ := flags.GetStringSlice("locales"); len(v) > 0 {
		a.config.Locales = v
	}
	if v, _ := flags.GetString("default-locale"); v != "" {
		a.config.DefaultLocale = v
	}
	if v, _ := flags.GetString("file-format"); v != "" {
		a.config.FileFormat = v
	}
	if v, _ := flags.GetBool("sort-keys"); v {
		a.config.SortKeys = true
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError prints an error to stderr and exits with status 1.
// Meant for top-level error handling in main.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
