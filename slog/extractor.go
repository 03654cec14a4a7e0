package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readmode"
)

var _ readmode.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   readmode.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next readmode.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the section and
// outline counts of the result.
func (e *LoggingExtractor) Extract(html, pageURL string) (doc *readmode.Document, err error) {
	defer func(begin time.Time) {
		var sections, outline int
		if doc != nil {
			sections = len(doc.Sections)
			outline = len(doc.Outline)
		}
		e.logger.Info("extract",
			"url", pageURL,
			"bytes", len(html),
			"sections", sections,
			"outline", outline,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
