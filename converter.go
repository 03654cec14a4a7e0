package readmode

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a page's main content region).
	// Relative links and images are resolved against baseURL when it is
	// not empty.
	Convert(html string, baseURL string) (string, error)
}
