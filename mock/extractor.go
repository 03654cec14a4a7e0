package mock

import "github.com/fwojciec/readmode"

var _ readmode.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readmode.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*readmode.Document, error)
}

func (e *Extractor) Extract(html, pageURL string) (*readmode.Document, error) {
	return e.ExtractFn(html, pageURL)
}

var _ readmode.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of readmode.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html, pageURL string) (*readmode.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html, pageURL string) (*readmode.Metadata, error) {
	return e.ExtractMetadataFn(html, pageURL)
}

var _ readmode.Categorizer = (*Categorizer)(nil)

// Categorizer is a mock implementation of readmode.Categorizer.
type Categorizer struct {
	CategorizeFn func(html, pageURL string) (*readmode.SiteInfo, error)
}

func (c *Categorizer) Categorize(html, pageURL string) (*readmode.SiteInfo, error) {
	return c.CategorizeFn(html, pageURL)
}
