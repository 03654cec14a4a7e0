package mock

import (
	"context"

	"github.com/fwojciec/readmode"
)

var _ readmode.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of readmode.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, style readmode.SummaryStyle) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, style readmode.SummaryStyle) (string, error) {
	return s.SummarizeFn(ctx, text, style)
}
