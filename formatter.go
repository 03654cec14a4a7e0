package readmode

import "strings"

// FormatText renders a document's sections as plain text for display or LLM
// context. Subsection titles that repeat their section title are omitted.
// Blocks are separated by blank lines.
func FormatText(doc *Document) string {
	if doc == nil {
		return ""
	}

	parts := make([]string, 0, 1+2*len(doc.Sections))
	if doc.Title != "" {
		parts = append(parts, "# "+doc.Title)
	}
	for _, s := range doc.Sections {
		if s.Title != doc.Title {
			parts = append(parts, "## "+s.Title)
		}
		for _, sub := range s.Subsections {
			if sub.Title != s.Title {
				parts = append(parts, "### "+sub.Title)
			}
			if sub.Content != "" {
				parts = append(parts, sub.Content)
			}
		}
	}

	return strings.Join(parts, "\n\n")
}
