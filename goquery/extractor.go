// Package goquery implements the reading-mode extraction engine on top of
// goquery and golang.org/x/net/html: it locates a page's main content
// region, nests its headings into a hierarchy, and renders the hierarchy
// into the sections and outline views of a readmode.Document.
package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readmode"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Ensure Extractor implements the readmode interfaces at compile time.
var (
	_ readmode.Extractor   = (*Extractor)(nil)
	_ readmode.Categorizer = (*Extractor)(nil)
)

// Extractor builds reading-mode documents from page markup.
// Extractor holds no per-call state and is safe for concurrent use.
type Extractor struct {
	metadata readmode.MetadataExtractor
	newID    func() string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMetadataExtractor sets a secondary extractor consulted when the page
// exposes no author or publish date through its meta tags.
func WithMetadataExtractor(m readmode.MetadataExtractor) Option {
	return func(e *Extractor) {
		e.metadata = m
	}
}

// WithIDFunc overrides the generator for section and heading IDs.
// IDs are made unique within a document even if fn repeats itself.
func WithIDFunc(fn func() string) Option {
	return func(e *Extractor) {
		e.newID = fn
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		newID: shortID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and builds the Document for pageURL.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*readmode.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readmode.Errorf(readmode.EMALFORMED, "empty HTML input")
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readmode.Errorf(readmode.EMALFORMED, "failed to parse HTML: %v", err)
	}

	return e.extract(root, pageURL, rawHTML)
}

// ExtractNode builds the Document for pageURL from an already parsed tree.
// The tree is only read, never modified.
func (e *Extractor) ExtractNode(root *html.Node, pageURL string) (*readmode.Document, error) {
	if root == nil {
		return nil, readmode.Errorf(readmode.EMALFORMED, "nil document")
	}
	return e.extract(root, pageURL, "")
}

func (e *Extractor) extract(root *html.Node, pageURL, rawHTML string) (doc *readmode.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, readmode.Errorf(readmode.EINTERNAL, "extraction of %s failed: %v", pageURL, r)
		}
	}()

	page, err := url.Parse(pageURL)
	if err != nil {
		return nil, readmode.Errorf(readmode.EINVALID, "invalid page URL: %v", err)
	}

	gdoc := goquery.NewDocumentFromNode(root)
	region := mainContent(gdoc)
	if region == nil {
		return nil, readmode.Errorf(readmode.ENOTFOUND, "no main content found")
	}
	regionNode := region.Get(0)

	base := baseURL(gdoc, page)
	title := pageTitle(gdoc)
	newID := uniqueIDs(e.newID)

	hierarchy := BuildHierarchy(regionNode, newID)
	sections := Sections(hierarchy, base, newID)
	if len(sections) == 0 {
		sections = fallbackSections(regionNode, title, base, newID)
	}

	doc = &readmode.Document{
		ID:          documentID(),
		URL:         pageURL,
		Title:       title,
		Domain:      page.Host,
		Favicon:     Favicon(page.Host),
		PublishDate: publishDate(gdoc),
		ReadTime:    ReadTime(region.Text()),
		Author:      author(gdoc),
		Sections:    sections,
		Outline:     Outline(hierarchy, base),
	}
	e.fillMetadata(doc, gdoc, rawHTML)
	if doc.Author == "" {
		doc.Author = unknownAuthor
	}
	return doc, nil
}

// fillMetadata asks the secondary metadata extractor for whatever the meta
// tags did not provide. Failures leave the document as it is.
func (e *Extractor) fillMetadata(doc *readmode.Document, gdoc *goquery.Document, rawHTML string) {
	if e.metadata == nil || (doc.Author != "" && doc.PublishDate != "") {
		return
	}

	if rawHTML == "" {
		var err error
		if rawHTML, err = goquery.OuterHtml(gdoc.Selection); err != nil {
			return
		}
	}

	meta, err := e.metadata.ExtractMetadata(rawHTML, doc.URL)
	if err != nil || meta == nil {
		return
	}
	if doc.Author == "" {
		doc.Author = CleanText(meta.Author)
	}
	if doc.PublishDate == "" && !meta.PublishedAt.IsZero() {
		doc.PublishDate = meta.PublishedAt.Format("2006-01-02")
	}
}

// exportNoiseSelector matches elements dropped from exported regions: the
// tags the walker prunes plus MediaWiki "[edit]" links.
const exportNoiseSelector = "script, style, nav, footer, header, form, noscript, svg, iframe, button, .mw-editsection"

// MainContentHTML returns the outer HTML of the page's main content region
// with navigation, scripts and edit links removed.
// Returns ENOTFOUND if the page has no such region.
func MainContentHTML(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", readmode.Errorf(readmode.EMALFORMED, "failed to parse HTML: %v", err)
	}

	region := mainContent(doc)
	if region == nil {
		return "", readmode.Errorf(readmode.ENOTFOUND, "no main content found")
	}
	region.Find(exportNoiseSelector).Remove()

	out, err := goquery.OuterHtml(region)
	if err != nil {
		return "", fmt.Errorf("render main content: %w", err)
	}
	return out, nil
}

// shortID returns an 8-character random token.
func shortID() string {
	return uuid.NewString()[:8]
}

// documentID returns a 10-character random token.
func documentID() string {
	return uuid.NewString()[:10]
}

// uniqueIDs wraps gen so that it never returns the same ID twice.
func uniqueIDs(gen func() string) func() string {
	seen := make(map[string]bool)
	return func() string {
		id := gen()
		for seen[id] {
			id = fmt.Sprintf("%s-%d", id, len(seen))
		}
		seen[id] = true
		return id
	}
}
