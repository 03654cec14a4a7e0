package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readmode"
	"golang.org/x/net/html"
)

// Titles of synthetic sections and subsections.
const (
	OverviewTitle     = "Overview"
	IntroductionTitle = "Introduction"
)

// Sections builds the two-level view of h.
//
// Each root at the minimum heading level becomes a Section. The root's own
// content becomes an "Overview" subsection and each direct child becomes one
// subsection holding the child's content followed by every deeper heading's
// title and content in reading order. Empty subsections and sections without
// subsections are dropped. Content before the first heading is prepended as
// an "Introduction" section unless one already exists.
func Sections(h *Hierarchy, base *url.URL, newID func() string) []readmode.Section {
	sections := []readmode.Section{}
	minLevel := h.MinLevel()

	for _, top := range h.Roots {
		if top.Level != minLevel {
			continue
		}

		section := readmode.Section{
			ID:          top.ID,
			Title:       top.Title,
			Subsections: []readmode.Subsection{},
		}
		if len(top.Content) > 0 {
			if block := ExtractContent(top.Content, base); !block.IsEmpty() {
				section.Subsections = append(section.Subsections, readmode.Subsection{
					ID:           newID(),
					Title:        OverviewTitle,
					ContentBlock: block,
				})
			}
		}
		for _, child := range top.Children {
			block := ExtractContent(flatten(child), base)
			if block.IsEmpty() {
				continue
			}
			section.Subsections = append(section.Subsections, readmode.Subsection{
				ID:           child.ID,
				Title:        child.Title,
				ContentBlock: block,
			})
		}

		if len(section.Subsections) > 0 {
			sections = append(sections, section)
		}
	}

	if len(sections) == 0 || len(h.Preface) == 0 || hasIntroduction(sections) {
		return sections
	}
	block := ExtractContent(h.Preface, base)
	if block.IsEmpty() {
		return sections
	}
	intro := readmode.Section{
		ID:    newID(),
		Title: IntroductionTitle,
		Subsections: []readmode.Subsection{{
			ID:           newID(),
			Title:        OverviewTitle,
			ContentBlock: block,
		}},
	}
	return append([]readmode.Section{intro}, sections...)
}

// Outline builds the full recursive view of h. Every heading keeps only its
// own direct content.
func Outline(h *Hierarchy, base *url.URL) []readmode.OutlineNode {
	nodes := make([]readmode.OutlineNode, 0, len(h.Roots))
	for _, r := range h.Roots {
		nodes = append(nodes, outlineNode(r, base))
	}
	return nodes
}

func outlineNode(n *HeadingNode, base *url.URL) readmode.OutlineNode {
	children := make([]readmode.OutlineNode, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, outlineNode(c, base))
	}
	return readmode.OutlineNode{
		ID:           n.ID,
		Title:        n.Title,
		Level:        n.Level,
		ContentBlock: ExtractContent(n.Content, base),
		Children:     children,
	}
}

// fallbackSections treats the whole region as a single section named after
// the page. Returns an empty slice if the region has no extractable content.
func fallbackSections(region *html.Node, title string, base *url.URL, newID func() string) []readmode.Section {
	block := ExtractContent([]*html.Node{region}, base)
	if block.IsEmpty() {
		return []readmode.Section{}
	}
	return []readmode.Section{{
		ID:    newID(),
		Title: title,
		Subsections: []readmode.Subsection{{
			ID:           newID(),
			Title:        title,
			ContentBlock: block,
		}},
	}}
}

// flatten returns n's own content followed by, for each descendant in
// reading order, a heading marker carrying its title and its content.
func flatten(n *HeadingNode) []*html.Node {
	nodes := make([]*html.Node, 0, len(n.Content))
	nodes = append(nodes, n.Content...)
	for _, c := range n.Children {
		nodes = append(nodes, markerNode(c.Level, c.Title))
		nodes = append(nodes, flatten(c)...)
	}
	return nodes
}

func hasIntroduction(sections []readmode.Section) bool {
	for _, s := range sections {
		if strings.EqualFold(strings.TrimSpace(s.Title), IntroductionTitle) {
			return true
		}
	}
	return false
}
