// Package gemini implements readmode.Summarizer on the Google Gemini API.
package gemini

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readmode"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// MaxInputChars caps the article text sent to the model.
const MaxInputChars = 15000

// stylePrompts are the instructions placed before the article text.
var stylePrompts = map[readmode.SummaryStyle]string{
	readmode.SummaryConcise:  "Summarize in 80-100 words (plain, factual, concise):",
	readmode.SummaryDetailed: "Summarize with more context and details in 100 to 150 words:",
}

// Ensure Summarizer implements readmode.Summarizer at compile time.
var _ readmode.Summarizer = (*Summarizer)(nil)

// Summarizer implements readmode.Summarizer using Google Gemini.
type Summarizer struct {
	client    *genai.Client
	model     string
	counter   readmode.TokenCounter
	maxTokens int
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// WithTokenLimit rejects prompts that counter measures at more than limit tokens.
func WithTokenLimit(counter readmode.TokenCounter, limit int) Option {
	return func(s *Summarizer) {
		s.counter = counter
		s.maxTokens = limit
	}
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client, opts ...Option) *Summarizer {
	s := &Summarizer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns a summary of text in the given style.
func (s *Summarizer) Summarize(ctx context.Context, text string, style readmode.SummaryStyle) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", readmode.Errorf(readmode.EINVALID, "No text provided")
	}
	if err := style.Validate(); err != nil {
		return "", err
	}

	prompt := BuildPrompt(text, style)
	if s.counter != nil && s.maxTokens > 0 {
		n, err := s.counter.CountTokens(ctx, prompt)
		if err != nil {
			return "", err
		}
		if n > s.maxTokens {
			return "", readmode.Errorf(readmode.EINVALID, "text too long: %d tokens exceeds limit of %d", n, s.maxTokens)
		}
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", readmode.Errorf(readmode.EUNAVAILABLE, "Error generating summary: %v", err)
	}
	if result == nil {
		return "", readmode.Errorf(readmode.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize web articles for a reading-mode view. Use only the article text provided and do not add facts.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt for style from text truncated to
// MaxInputChars characters.
func BuildPrompt(text string, style readmode.SummaryStyle) string {
	instruction, ok := stylePrompts[style]
	if !ok {
		instruction = stylePrompts[readmode.SummaryConcise]
	}
	return instruction + "\n\n" + truncate(text, MaxInputChars)
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
