package goquery

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// boilerplateTokens mark paragraph, list and link text as site chrome rather
// than article content.
var boilerplateTokens = []string{
	"cookie", "subscribe", "accept", "terms", "login", "register", "signup",
	"copyright", "advert", "policy", "menu", "share", "edit", "feedback",
}

// skipTags are structural or noise elements. Their subtrees never carry
// article content and are pruned during traversal.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"footer":   true,
	"header":   true,
	"form":     true,
	"noscript": true,
	"svg":      true,
	"iframe":   true,
	"button":   true,
}

// CleanText collapses every whitespace run into a single space and trims the ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsValidText reports whether a paragraph, list item or link text looks like
// content. Fragments shorter than two words and text containing a
// boilerplate token are rejected.
func IsValidText(s string) bool {
	if s == "" {
		return false
	}
	lowered := strings.ToLower(s)
	if len(strings.Fields(lowered)) < 2 {
		return false
	}
	for _, token := range boilerplateTokens {
		if strings.Contains(lowered, token) {
			return false
		}
	}
	return true
}

// isValidHeading reports whether cleaned heading text is long enough to keep.
func isValidHeading(s string) bool {
	return utf8.RuneCountInString(s) > 2
}

// headingLevel returns 1-6 for h1-h6 tags and 0 for anything else.
func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}

// isElement reports whether n is an element with the given tag.
func isElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// nodeText returns the cleaned text of n and its descendants, ignoring
// skipped subtrees. Text nodes are joined with spaces so adjacent inline
// elements do not run together.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
			return
		case html.ElementNode:
			if skipTags[n.Data] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return CleanText(sb.String())
}
