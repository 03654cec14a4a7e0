package goquery

import (
	"net/url"
	"strings"
)

// resolveURL resolves ref against base and returns the absolute form.
// Returns false if ref is empty or cannot be parsed. A nil base leaves
// ref as written.
func resolveURL(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if base == nil {
		return u.String(), true
	}
	return base.ResolveReference(u).String(), true
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
