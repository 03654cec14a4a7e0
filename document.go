package readmode

import (
	"context"
	"time"
)

// Document is the reading-mode rendition of a single web page.
// It is created once per extraction and never mutated afterwards.
type Document struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Domain      string        `json:"domain"`
	Favicon     string        `json:"favicon"`
	PublishDate string        `json:"publishDate"`
	ReadTime    string        `json:"readTime"`
	Author      string        `json:"author"`
	Sections    []Section     `json:"sections"`
	Outline     []OutlineNode `json:"outline"`
}

// ContentBlock holds the cleaned content gathered from a set of markup nodes.
// Paragraphs are joined by a blank line.
type ContentBlock struct {
	Content string  `json:"content"`
	Images  []Image `json:"images"`
	Links   []Link  `json:"links"`
}

// IsEmpty reports whether the block carries no text, images or links.
func (b ContentBlock) IsEmpty() bool {
	return b.Content == "" && len(b.Images) == 0 && len(b.Links) == 0
}

// Image is an image reference with an absolute source URL.
type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// Link is a hyperlink with an absolute target URL.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// Section is a top-level entry of the two-level view.
type Section struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Subsections []Subsection `json:"subsections"`
}

// Subsection is the second level of the two-level view. Deeper headings are
// flattened into its content as pseudo-heading paragraphs.
type Subsection struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	ContentBlock
}

// OutlineNode is one heading of the full recursive outline. It carries only
// the content that sits directly under its own heading.
type OutlineNode struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
	ContentBlock
	Children []OutlineNode `json:"children"`
}

// Extractor turns raw page markup into a Document.
type Extractor interface {
	// Extract parses html and builds the Document for pageURL.
	// Relative image and link references are resolved against pageURL.
	// Returns ENOTFOUND if no main content region can be located.
	Extract(html string, pageURL string) (*Document, error)
}

// Metadata is page metadata recovered by a secondary extractor.
type Metadata struct {
	Title       string
	Author      string
	PublishedAt time.Time
}

// MetadataExtractor recovers page metadata (author, publish date) when the
// markup does not expose it through the usual meta tags.
type MetadataExtractor interface {
	ExtractMetadata(html string, pageURL string) (*Metadata, error)
}

// SiteInfo is a coarse classification of the site a page belongs to.
type SiteInfo struct {
	Site          string `json:"site"`
	Category      string `json:"category"`
	PublishedDate string `json:"published_date"`
}

// Categorizer classifies the site a page belongs to.
type Categorizer interface {
	Categorize(html string, pageURL string) (*SiteInfo, error)
}

// DocumentStore persists extracted documents as a batch. Saved documents
// become visible together on Commit; Abort discards them.
type DocumentStore interface {
	Save(ctx context.Context, doc *Document) error
	Commit() error
	Abort() error
}

// Renderer renders a Document as a standalone HTML reading view.
type Renderer interface {
	Render(doc *Document) (string, error)
}
