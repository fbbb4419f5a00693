package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/deckcount/internal/config"
)

// configTemplate is the annotated .deckcount file written by init.
//
//go:embed templates/deckcount.yaml
var configTemplate []byte

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .deckcount file",
		Long: `Write a .deckcount file listing every report setting with its default:
catalog path, report format, output file, missing-value placement and label,
and log format. Edit the values you want to change and delete the rest.

Examples:
  # Per-project settings next to the catalog
  deckcount init

  # Per-user settings picked up from any directory
  deckcount init -o ~/.config/deckcount/config.yaml

  # Replace an existing file
  deckcount init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Where to write the file")
	cmd.Flags().BoolP("force", "f", false,
		"Replace the file if it already exists")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeConfigTemplate(path, force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Flags given on the command line still take precedence over it.")
	return nil
}

// writeConfigTemplate creates path with the template contents.
// Without force an existing file is left untouched.
func writeConfigTemplate(path string, force bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !force {
		flags = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0600) //nolint:gosec // User-provided output path is intentional
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
	}
	if err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(configTemplate); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
