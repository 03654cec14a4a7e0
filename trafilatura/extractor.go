// Package trafilatura recovers page metadata with go-trafilatura when a page
// does not expose it through the usual meta tags.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readmode"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure MetadataExtractor implements readmode.MetadataExtractor at compile time.
var _ readmode.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor wraps go-trafilatura to read title, author and publish
// date from JSON-LD, Open Graph, Dublin Core and in-page bylines.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata processes raw HTML and returns the metadata trafilatura
// finds. Fields it cannot determine are left empty.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string, pageURL string) (*readmode.Metadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readmode.Errorf(readmode.EMALFORMED, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, readmode.Errorf(readmode.EMALFORMED, "trafilatura: %v", err)
	}

	return &readmode.Metadata{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Author:      strings.TrimSpace(result.Metadata.Author),
		PublishedAt: result.Metadata.Date,
	}, nil
}
