package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/deckcount/internal/catalog"
	"github.com/nao1215/deckcount/internal/model"
	"github.com/nao1215/deckcount/internal/report"
)

// ErrStepOrder is returned when a step runs before the step producing
// its input.
var ErrStepOrder = errors.New("pipeline step is missing its input")

// LoadFunc reads the records of a catalog.
type LoadFunc func(ctx context.Context, path string) ([]model.Record, error)

// LoadStep reads the catalog named by State.Source.
type LoadStep struct {
	load   LoadFunc
	logger *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithLoadFunc replaces catalog.Load, mainly for tests.
func WithLoadFunc(fn LoadFunc) LoadStepOption {
	return func(s *LoadStep) {
		s.load = fn
	}
}

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a step that loads records with catalog.Load.
func NewLoadStep(opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{
		load:   catalog.Load,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do loads the records into the state.
func (s *LoadStep) Do(ctx context.Context, state *State) error {
	records, err := s.load(ctx, state.Source)
	if err != nil {
		return err
	}
	state.Records = records
	s.logger.Debug("catalog loaded", "source", state.Source, "records", len(records))
	return nil
}

// GroupStep groups the loaded records by year and set.
type GroupStep struct{}

// NewGroupStep creates a grouping step.
func NewGroupStep() *GroupStep {
	return &GroupStep{}
}

// Name returns the step name.
func (s *GroupStep) Name() string {
	return "group"
}

// Do groups State.Records into State.Grouping.
// An empty or nil record list yields an empty grouping.
func (s *GroupStep) Do(_ context.Context, state *State) error {
	state.Grouping = model.Group(state.Records)
	return nil
}

// SummarizeStep sorts the grouping into a display-ready summary.
type SummarizeStep struct {
	opts []model.SummaryOption
}

// NewSummarizeStep creates a summarizing step.
// The options control ordering and the missing-value label.
func NewSummarizeStep(opts ...model.SummaryOption) *SummarizeStep {
	return &SummarizeStep{opts: opts}
}

// Name returns the step name.
func (s *SummarizeStep) Name() string {
	return "summarize"
}

// Do builds State.Summary from State.Grouping.
func (s *SummarizeStep) Do(_ context.Context, state *State) error {
	if state.Grouping == nil {
		return fmt.Errorf("%w: %s needs a grouping", ErrStepOrder, s.Name())
	}
	opts := append([]model.SummaryOption{model.WithSource(state.Source)}, s.opts...)
	state.Summary = model.NewSummary(state.Grouping, opts...)
	return nil
}

// RenderStep writes the summary with a report writer.
type RenderStep struct {
	writer report.Writer
}

// NewRenderStep creates a step rendering with writer.
func NewRenderStep(writer report.Writer) *RenderStep {
	return &RenderStep{writer: writer}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders State.Summary.
func (s *RenderStep) Do(_ context.Context, state *State) error {
	if state.Summary == nil {
		return fmt.Errorf("%w: %s needs a summary", ErrStepOrder, s.Name())
	}
	if _, err := s.writer.Write(state.Summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
