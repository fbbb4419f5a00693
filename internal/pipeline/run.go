package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/deckcount/internal/model"
	"github.com/nao1215/deckcount/internal/report"
)

// ErrNoOutput is returned by Run when Options.Output is nil.
var ErrNoOutput = errors.New("no report output destination")

// Options configures Run.
type Options struct {
	// Input is the catalog path.
	Input string

	// Format selects the report writer.
	Format report.Format

	// Output receives the rendered report.
	Output io.Writer

	// Ordering controls where missing keys sort.
	Ordering model.Ordering

	// MissingLabel replaces model.DefaultMissingLabel when non-empty.
	MissingLabel string

	// Version is embedded in JSON reports.
	Version string

	// Logger receives step diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Load replaces catalog.Load when set.
	Load LoadFunc
}

// Run loads, groups, summarizes, and renders the catalog at opts.Input.
//
// The report is rendered into memory and copied to opts.Output only after
// every step succeeded, so a failed run writes nothing.
func Run(ctx context.Context, opts Options) (*model.Summary, error) {
	if opts.Output == nil {
		return nil, ErrNoOutput
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loadOpts := []LoadStepOption{WithLoadLogger(logger)}
	if opts.Load != nil {
		loadOpts = append(loadOpts, WithLoadFunc(opts.Load))
	}

	var buf bytes.Buffer
	p := New(WithLogger(logger))
	p.AddSteps(
		NewLoadStep(loadOpts...),
		NewGroupStep(),
		NewSummarizeStep(
			model.WithOrdering(opts.Ordering),
			model.WithMissingLabel(opts.MissingLabel),
		),
		NewRenderStep(report.NewWriter(opts.Format, &buf, opts.Version)),
	)

	state := NewState(opts.Input)
	if err := p.Execute(ctx, state); err != nil {
		return nil, err
	}

	if _, err := buf.WriteTo(opts.Output); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return state.Summary, nil
}
