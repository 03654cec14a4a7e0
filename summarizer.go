package readmode

import "context"

// SummaryStyle selects the length and tone of a summary.
type SummaryStyle string

// Supported summary styles.
const (
	SummaryConcise  SummaryStyle = "concise"
	SummaryDetailed SummaryStyle = "detailed"
)

// Validate returns an error if the style is not supported.
func (s SummaryStyle) Validate() error {
	switch s {
	case SummaryConcise, SummaryDetailed:
		return nil
	}
	return Errorf(EINVALID, "unsupported summary style %q", s)
}

// Summarizer condenses article text using a language model.
type Summarizer interface {
	// Summarize returns a short summary of text in the given style.
	// Returns EINVALID if text is empty.
	Summarize(ctx context.Context, text string, style SummaryStyle) (string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
