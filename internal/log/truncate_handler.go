package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxValueLen is the attribute value length at which truncation
// kicks in. Long enough for any URL or error chain, short enough that a
// page's full word list never lands in the log.
const DefaultMaxValueLen = 256

// truncationMark is appended to shortened values.
const truncationMark = "...(truncated)"

// TruncateHandler wraps an slog.Handler and shortens oversized attribute
// values before passing records on.
//
// Design decision: We use a handler wrapper rather than trimming at each
// call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free to log whole values; policy lives in one place
type TruncateHandler struct {
	// handler is the underlying slog handler that receives trimmed records.
	handler slog.Handler

	// maxValueLen is the length beyond which string values are shortened.
	maxValueLen int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. A maxValueLen of
// zero or less selects DefaultMaxValueLen.
func NewTruncateHandler(handler slog.Handler, maxValueLen int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxValueLen <= 0 {
		maxValueLen = DefaultMaxValueLen
	}
	return &TruncateHandler{handler: handler, maxValueLen: maxValueLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims the record's attributes and passes it to the underlying
// handler.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(h.trimAttr(a))
		return true
	})

	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new handler with the given attributes added, trimmed.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	trimmedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		trimmedAttrs[i] = h.trimAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(trimmedAttrs), maxValueLen: h.maxValueLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxValueLen: h.maxValueLen}
}

// trimAttr shortens a single attribute, recursively handling groups.
func (h *TruncateHandler) trimAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		trimmedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			trimmedAttrs[i] = h.trimAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(trimmedAttrs...)}

	case slog.KindString:
		return slog.String(a.Key, h.shorten(a.Value.String()))

	case slog.KindAny:
		// Word slices and similar arrive as KindAny; render and trim.
		rendered := fmt.Sprintf("%v", a.Value.Any())
		if len(rendered) > h.maxValueLen {
			return slog.String(a.Key, h.shorten(rendered))
		}
		return a

	default:
		return a
	}
}

// shorten truncates a string value that exceeds the limit.
func (h *TruncateHandler) shorten(s string) string {
	if len(s) <= h.maxValueLen {
		return s
	}
	return s[:h.maxValueLen] + truncationMark
}

// NewLogger creates an slog.Logger whose output has oversized values
// truncated. Verbose selects debug level; the default level is warn so a
// normal run only reports pages that failed to fetch.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncateHandler(textHandler, DefaultMaxValueLen))
}
