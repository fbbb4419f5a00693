package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/deckcount/internal/config"
	dclog "github.com/nao1215/deckcount/internal/log"
	"github.com/nao1215/deckcount/internal/pipeline"
)

// runReportCmd executes the root command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runReport(ctx, cfg, cmd.OutOrStdout(), logger)
}

// newLogger builds the stderr logger selected by cfg.LogFormat.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return dclog.NewJSONLogger(w, cfg.Verbose)
	}
	return dclog.NewLogger(w, cfg.Verbose)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file, and flags.
// Flags win over the file only when they were given on the command line.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit config path must exist; the default locations are optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Apply(file)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		if cfg.InputPath, err = flags.GetString("input"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.ReportFile, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("missing-first") {
		if cfg.MissingFirst, err = flags.GetBool("missing-first"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-format") {
		if cfg.LogFormat, err = flags.GetString("log-format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("missing-label") {
		if cfg.MissingLabel, err = flags.GetString("missing-label"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// runReport produces the report and writes it to stdout or cfg.ReportFile.
// Nothing is written when any step fails.
func runReport(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	logger.Info("generating report",
		"input", cfg.InputPath,
		"format", cfg.ReportFormat().String(),
	)

	var buf bytes.Buffer
	summary, err := pipeline.Run(ctx, pipeline.Options{
		Input:        cfg.InputPath,
		Format:       cfg.ReportFormat(),
		Output:       &buf,
		Ordering:     cfg.Ordering(),
		MissingLabel: cfg.MissingLabel,
		Version:      getVersion(),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	logger.Debug("report generated",
		"years", summary.YearCount(),
		"sets", summary.SetCount(),
		"decks", summary.Total,
	)

	if cfg.ReportFile == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	return writeReportFile(cfg.ReportFile, buf.Bytes())
}

// writeReportFile writes data to path, creating parent directories.
func writeReportFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
