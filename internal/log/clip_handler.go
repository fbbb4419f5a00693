package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"unicode/utf8"
)

const (
	// DefaultMaxValueRunes is the longest string value logged unchanged.
	DefaultMaxValueRunes = 120

	// DefaultMaxItems is the longest slice logged element by element.
	DefaultMaxItems = 10
)

// ClipHandler wraps an slog.Handler and shortens oversized attribute values
// before passing records on.
type ClipHandler struct {
	// handler is the underlying slog handler that receives clipped records.
	handler slog.Handler

	// maxRunes limits string values.
	maxRunes int

	// maxItems limits slice and array values.
	maxItems int
}

// NewClipHandler creates a ClipHandler wrapping handler with the default
// limits. If handler is nil, slog.Default().Handler() is used.
func NewClipHandler(handler slog.Handler) *ClipHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &ClipHandler{
		handler:  handler,
		maxRunes: DefaultMaxValueRunes,
		maxItems: DefaultMaxItems,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ClipHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it to the underlying handler.
func (h *ClipHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.clipAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *ClipHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clipped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clipped[i] = h.clipAttr(a)
	}
	return &ClipHandler{handler: h.handler.WithAttrs(clipped), maxRunes: h.maxRunes, maxItems: h.maxItems}
}

// WithGroup returns a new handler with the given group name.
func (h *ClipHandler) WithGroup(name string) slog.Handler {
	return &ClipHandler{handler: h.handler.WithGroup(name), maxRunes: h.maxRunes, maxItems: h.maxItems}
}

// clipAttr clips a single attribute, recursing into groups.
func (h *ClipHandler) clipAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		clipped := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			clipped[i] = h.clipAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clipped...)}
	case slog.KindString:
		return slog.String(a.Key, h.clipString(a.Value.String()))
	case slog.KindAny:
		v := reflect.ValueOf(a.Value.Any())
		if (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && v.Len() > h.maxItems {
			return slog.String(a.Key, fmt.Sprintf("[%d items]", v.Len()))
		}
	}
	return a
}

// clipString shortens s to maxRunes runes.
func (h *ClipHandler) clipString(s string) string {
	n := utf8.RuneCountInString(s)
	if n <= h.maxRunes {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s...(+%d)", string(runes[:h.maxRunes]), n-h.maxRunes)
}

// NewLogger creates a text slog.Logger with clipping.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewClipHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a JSON slog.Logger with clipping.
// Useful when diagnostics are collected by another tool.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewClipHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
