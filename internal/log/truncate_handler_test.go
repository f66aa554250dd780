package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTruncateHandler tests oversized-value truncation.
func TestTruncateHandler(t *testing.T) {
	t.Parallel()

	t.Run("long string values are shortened", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 16))

		logger.Info("fetched", "words", strings.Repeat("a", 100))

		out := buf.String()
		if !strings.Contains(out, truncationMark) {
			t.Errorf("expected truncation mark in output: %s", out)
		}
		if strings.Contains(out, strings.Repeat("a", 100)) {
			t.Error("expected long value to be shortened")
		}
	})

	t.Run("short values pass through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 16))

		logger.Info("fetched", "title", "Engineering")

		out := buf.String()
		if !strings.Contains(out, "Engineering") {
			t.Errorf("expected value untouched: %s", out)
		}
		if strings.Contains(out, truncationMark) {
			t.Errorf("unexpected truncation: %s", out)
		}
	})

	t.Run("slice attributes are trimmed", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 32))

		words := make([]string, 100)
		for i := range words {
			words[i] = "aircraft"
		}
		logger.Info("matched", "words", words)

		if !strings.Contains(buf.String(), truncationMark) {
			t.Errorf("expected slice attribute trimmed: %s", buf.String())
		}
	})

	t.Run("group attributes are trimmed recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewTruncateHandler(slog.NewTextHandler(&buf, nil), 16))

		logger.Info("page",
			slog.Group("result",
				slog.String("words", strings.Repeat("b", 64)),
				slog.Int("count", 64),
			),
		)

		out := buf.String()
		if !strings.Contains(out, truncationMark) {
			t.Errorf("expected truncation inside group: %s", out)
		}
		if !strings.Contains(out, "count=64") {
			t.Errorf("expected non-string group member untouched: %s", out)
		}
	})
}

// TestNewLogger tests logger construction and level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Info("hidden")
		logger.Warn("visible")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("info should be suppressed when not verbose")
		}
		if !strings.Contains(out, "visible") {
			t.Error("warn should be logged")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("details")
		if !strings.Contains(buf.String(), "details") {
			t.Error("debug should be logged when verbose")
		}
	})
}
