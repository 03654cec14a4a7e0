package goquery

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HeadingNode is a heading of the page together with the content that sits
// directly beneath it and its subheadings. Every child's Level is strictly
// greater than the parent's; levels need not be contiguous.
type HeadingNode struct {
	ID       string
	Title    string
	Level    int
	Content  []*html.Node
	Children []*HeadingNode
}

// Hierarchy is the heading forest of a content region. Preface holds the
// content found before the first heading.
type Hierarchy struct {
	Roots   []*HeadingNode
	Preface []*html.Node
}

// MinLevel returns the smallest level among the roots, or 0 when the
// hierarchy has no headings.
func (h *Hierarchy) MinLevel() int {
	level := 0
	for _, r := range h.Roots {
		if level == 0 || r.Level < level {
			level = r.Level
		}
	}
	return level
}

// BuildHierarchy traverses the descendants of region in document order and
// nests headings by level using a stack of open headings.
//
// A heading of level N closes every open heading with level >= N and opens
// beneath whatever remains, so skipped or non-monotonic levels need no
// special handling. Elements without heading descendants become content of
// the innermost open heading, or of the preface before the first heading.
// Headings with no text are kept as plain content.
func BuildHierarchy(region *html.Node, newID func() string) *Hierarchy {
	b := &builder{
		hierarchy: &Hierarchy{},
		newID:     newID,
	}
	if region == nil {
		return b.hierarchy
	}
	for c := region.FirstChild; c != nil; c = c.NextSibling {
		b.visit(c)
	}
	return b.hierarchy
}

type builder struct {
	hierarchy *Hierarchy
	stack     []*HeadingNode
	newID     func() string
}

func (b *builder) visit(n *html.Node) {
	if n.Type != html.ElementNode || skipTags[n.Data] {
		return
	}

	if level := headingLevel(n.Data); level > 0 {
		if title := nodeText(n); title != "" {
			b.open(level, title)
			return
		}
		b.appendContent(n)
		return
	}

	if !containsHeading(n) {
		b.appendContent(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.visit(c)
	}
}

// open pushes a new heading after popping every open heading of the same or
// deeper level.
func (b *builder) open(level int, title string) {
	for len(b.stack) > 0 && b.stack[len(b.stack)-1].Level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}

	node := &HeadingNode{
		ID:    b.newID(),
		Title: title,
		Level: level,
	}
	if len(b.stack) > 0 {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, node)
	} else {
		b.hierarchy.Roots = append(b.hierarchy.Roots, node)
	}
	b.stack = append(b.stack, node)
}

func (b *builder) appendContent(n *html.Node) {
	if len(b.stack) == 0 {
		b.hierarchy.Preface = append(b.hierarchy.Preface, n)
		return
	}
	top := b.stack[len(b.stack)-1]
	top.Content = append(top.Content, n)
}

// containsHeading reports whether any non-skipped descendant of n is a heading.
func containsHeading(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || skipTags[c.Data] {
			continue
		}
		if headingLevel(c.Data) > 0 || containsHeading(c) {
			return true
		}
	}
	return false
}

// markerNode builds a heading element that does not exist in the source, used
// to keep a subheading's title inline when its content is flattened into an
// ancestor.
func markerNode(level int, title string) *html.Node {
	tag := "h" + strconv.Itoa(level)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	return n
}
