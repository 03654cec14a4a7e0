// Package fs exports reading-mode documents as text files on disk.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/readmode"
)

// URLToPath converts a page URL to a relative file path under its host.
// Example: https://example.com/blog/post → example.com/blog/post.md
// Query strings and fragments are ignored. Returns EINVALID for URLs
// without a host.
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", readmode.Errorf(readmode.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := strings.ToLower(strings.ReplaceAll(u.Host, ":", "_"))
	if strings.Trim(host, ".") == "" {
		return "", readmode.Errorf(readmode.EINVALID, "URL %q has no host", rawURL)
	}

	p := u.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}
	// Cleaning a rooted path drops any "..".
	p = strings.TrimPrefix(path.Clean("/"+p), "/")

	return path.Join(host, p) + ".md", nil
}

// FormatDocument renders a document as text with YAML frontmatter.
func FormatDocument(doc *readmode.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\nauthor: ")
	b.WriteString(doc.Author)
	if doc.PublishDate != "" {
		b.WriteString("\npublished: ")
		b.WriteString(doc.PublishDate)
	}
	b.WriteString("\nread_time: ")
	b.WriteString(doc.ReadTime)
	b.WriteString("\n---\n\n")
	b.WriteString(readmode.FormatText(doc))
	b.WriteString("\n")
	return b.String()
}
