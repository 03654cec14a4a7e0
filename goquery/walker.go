package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readmode"
	"golang.org/x/net/html"
)

// paragraphSeparator joins paragraphs in ContentBlock.Content.
const paragraphSeparator = "\n\n"

// ExtractContent walks each node and its descendants in document order and
// gathers cleaned paragraphs, images and links into a ContentBlock.
//
// Paragraph-like text comes from p elements, list items and heading
// elements (rendered as pseudo-heading paragraphs such as "## Title").
// An immediately repeated paragraph is kept once. Image sources and link
// targets are resolved against base; references that cannot be resolved
// are dropped on their own without affecting the rest of the block.
func ExtractContent(nodes []*html.Node, base *url.URL) readmode.ContentBlock {
	w := &walker{
		base:   base,
		images: []readmode.Image{},
		links:  []readmode.Link{},
	}
	for _, n := range nodes {
		w.walk(n, false)
	}
	return readmode.ContentBlock{
		Content: strings.Join(w.paragraphs, paragraphSeparator),
		Images:  w.images,
		Links:   w.links,
	}
}

// walker accumulates the facts found while traversing markup.
type walker struct {
	base       *url.URL
	paragraphs []string
	last       string
	images     []readmode.Image
	links      []readmode.Link
}

// walk classifies n and descends into its children. inItem is true inside a
// list item whose text was already emitted; paragraphs and stray list items
// there are not emitted again, but images, links and nested lists are.
func (w *walker) walk(n *html.Node, inItem bool) {
	if n == nil || n.Type != html.ElementNode || skipTags[n.Data] {
		return
	}

	switch tag := n.Data; {
	case tag == "img":
		w.addImage(n)
		return
	case tag == "a":
		w.addLink(n)
	case tag == "p":
		if !inItem {
			w.addParagraph(nodeText(n))
		}
	case tag == "li":
		if !inItem {
			w.addParagraph(nodeText(n))
			inItem = true
		}
	case tag == "ul" || tag == "ol":
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isElement(c, "li") {
				w.addParagraph(nodeText(c))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c, inItem || isElement(c, "li"))
		}
		return
	case headingLevel(tag) > 0:
		w.addHeading(headingLevel(tag), nodeText(n))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, inItem)
	}
}

func (w *walker) addParagraph(text string) {
	if !IsValidText(text) {
		return
	}
	w.appendParagraph(text)
}

// addHeading emits a pseudo-heading paragraph. Headings skip the boilerplate
// filter and only need a minimal length.
func (w *walker) addHeading(level int, text string) {
	if !isValidHeading(text) {
		return
	}
	w.appendParagraph(strings.Repeat("#", level) + " " + text)
}

func (w *walker) appendParagraph(text string) {
	if text == w.last {
		return
	}
	w.paragraphs = append(w.paragraphs, text)
	w.last = text
}

func (w *walker) addImage(n *html.Node) {
	src, ok := attr(n, "src")
	if !ok {
		return
	}
	resolved, ok := resolveURL(w.base, src)
	if !ok {
		return
	}
	alt, _ := attr(n, "alt")
	caption, _ := attr(n, "title")
	w.images = append(w.images, readmode.Image{
		Src:     resolved,
		Alt:     alt,
		Caption: caption,
	})
}

func (w *walker) addLink(n *html.Node) {
	href, ok := attr(n, "href")
	if !ok || isNonHTTPLink(href) {
		return
	}
	text := nodeText(n)
	if !IsValidText(text) {
		return
	}
	resolved, ok := resolveURL(w.base, href)
	if !ok {
		return
	}
	w.links = append(w.links, readmode.Link{Href: resolved, Text: text})
}

// attr returns the value of the named attribute when present and non-empty.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, a.Val != ""
		}
	}
	return "", false
}
