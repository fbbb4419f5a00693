package model

import "slices"

// Summary is the sorted, display-ready view of a Grouping.
// Every report writer renders a Summary, so all formats agree on order
// and counts.
type Summary struct {
	// Source is the path the records were loaded from, if known.
	Source string `json:"source,omitempty"`

	// Years lists every year in display order.
	Years []YearSummary `json:"years"`

	// Total is the number of names across all buckets.
	Total int `json:"total"`
}

// YearSummary is one year of the report.
type YearSummary struct {
	// Year is the display label of the year.
	Year string `json:"year"`

	// Missing is true for the bucket of records without a year.
	Missing bool `json:"missing,omitempty"`

	// Count is the number of names in this year.
	Count int `json:"count"`

	// Sets lists the sets of this year in display order.
	Sets []SetSummary `json:"sets"`
}

// SetSummary is one (year, set) bucket of the report.
type SetSummary struct {
	// Set is the display label of the set.
	Set string `json:"set"`

	// Missing is true for the bucket of records without a set.
	Missing bool `json:"missing,omitempty"`

	// Count is the number of names in the bucket.
	Count int `json:"count"`

	// Names are the display labels of the names, sorted.
	Names []string `json:"names"`
}

// SummaryOption configures NewSummary.
type SummaryOption func(*summaryConfig)

type summaryConfig struct {
	ordering     Ordering
	missingLabel string
	source       string
}

// WithOrdering sets how keys are sorted.
func WithOrdering(o Ordering) SummaryOption {
	return func(c *summaryConfig) {
		c.ordering = o
	}
}

// WithMissingLabel sets the label shown for Missing keys.
// An empty label keeps DefaultMissingLabel.
func WithMissingLabel(label string) SummaryOption {
	return func(c *summaryConfig) {
		if label != "" {
			c.missingLabel = label
		}
	}
}

// WithSource records where the records came from.
func WithSource(source string) SummaryOption {
	return func(c *summaryConfig) {
		c.source = source
	}
}

// NewSummary sorts the grouping for display.
// Years use Ordering.Compare; sets and names use Ordering.CompareLexical.
// Names are sorted on a copy, so the bucket keeps its insertion order.
func NewSummary(g *Grouping, opts ...SummaryOption) *Summary {
	cfg := summaryConfig{missingLabel: DefaultMissingLabel}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Summary{
		Source: cfg.source,
		Years:  []YearSummary{},
	}

	years := g.Years()
	slices.SortFunc(years, cfg.ordering.Compare)

	for _, yk := range years {
		yg, _ := g.Lookup(yk)
		ys := YearSummary{
			Year:    yk.Label(cfg.missingLabel),
			Missing: yk.IsMissing(),
			Sets:    []SetSummary{},
		}

		sets := yg.Sets()
		slices.SortFunc(sets, cfg.ordering.CompareLexical)

		for _, sk := range sets {
			b, _ := yg.Lookup(sk)
			names := b.Names()
			slices.SortStableFunc(names, cfg.ordering.CompareLexical)

			labels := make([]string, len(names))
			for i, n := range names {
				labels[i] = n.Label(cfg.missingLabel)
			}

			ys.Sets = append(ys.Sets, SetSummary{
				Set:     sk.Label(cfg.missingLabel),
				Missing: sk.IsMissing(),
				Count:   len(labels),
				Names:   labels,
			})
			ys.Count += len(labels)
		}

		s.Years = append(s.Years, ys)
		s.Total += ys.Count
	}

	return s
}

// YearCount returns the number of distinct years.
func (s *Summary) YearCount() int {
	return len(s.Years)
}

// SetCount returns the number of (year, set) buckets.
func (s *Summary) SetCount() int {
	n := 0
	for _, y := range s.Years {
		n += len(y.Sets)
	}
	return n
}

// IsEmpty reports whether the summary holds no names.
func (s *Summary) IsEmpty() bool {
	return s.Total == 0
}
