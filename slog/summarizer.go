package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readmode"
)

var _ readmode.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   readmode.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next readmode.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs input and output
// sizes. The text itself is never logged.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, style readmode.SummaryStyle) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"style", string(style),
			"bytes", len(text),
			"summary_bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text, style)
}
