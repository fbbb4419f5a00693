package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/deckcount/internal/config"
)

// NewRootCmd creates the root command for deckcount.
// Running it without a subcommand produces the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deckcount",
		Short: "Report a deck catalog grouped by year and set",
		Long: `deckcount reads a catalog of preconstructed decks and prints every deck
grouped by release year and then by set, with a count per set and a grand total.

The catalog may be a JSON array, a YAML sequence, or a SQLite database with a
"decks" table. Each record has optional "name", "year", and "set" fields;
records lacking a field are grouped under the "(none)" label.

Examples:
  # Report the default catalog (src/data/precons-data.json)
  deckcount

  # Report a YAML catalog as Markdown into a file
  deckcount -i decks.yaml -m -o reports/decks.md

  # Put decks without a year or set first
  deckcount --missing-first --missing-label unknown

Configuration file (.deckcount) example:
  input: src/data/precons-data.json
  format: text
  missingFirst: false
  missingLabel: "(none)"`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.Flags().String("log-format", config.LogFormatText,
		"Diagnostic log format on stderr: text or json")

	// Input flags
	cmd.Flags().StringP("input", "i", config.DefaultInputPath,
		"Catalog file (.json, .yaml/.yml, or .db/.sqlite)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .deckcount in current directory, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("missing-first", false,
		"List decks without a year or set before the others")
	cmd.Flags().String("missing-label", config.DefaultMissingLabel,
		"Label printed for a missing year, set, or name")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
