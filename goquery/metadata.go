package goquery

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	untitled      = "Untitled"
	unknownAuthor = "Unknown Author"

	faviconURL = "https://www.google.com/s2/favicons?sz=64&domain_url=https://%s"

	// wordsPerMinute is the reading speed assumed by ReadTime.
	wordsPerMinute = 200
)

// mainContentSelectors locate the region holding the article, most specific
// first: encyclopedia containers, then semantic elements, then the body.
var mainContentSelectors = []string{
	".mw-parser-output",
	"#mw-content-text",
	".mw-body-content",
	"main",
	"article",
	"body",
}

var publishDateSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="pubdate"]`,
	`meta[name="date"]`,
	`meta[itemprop="datePublished"]`,
	`time[itemprop="datePublished"]`,
}

var authorSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`meta[name="dc.creator"]`,
	`meta[name="byl"]`,
}

var bylineClassRe = regexp.MustCompile(`(?i)author|byline`)

// mainContent returns the first region matched by mainContentSelectors, or
// nil if the document has none of them.
func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range mainContentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// pageTitle returns the cleaned <title> text, or "Untitled".
func pageTitle(doc *goquery.Document) string {
	if title := CleanText(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return untitled
}

// publishDate returns the first non-empty date found by publishDateSelectors.
func publishDate(doc *goquery.Document) string {
	return firstValue(doc, publishDateSelectors)
}

// author looks for an author in meta tags, then in the first element whose
// class mentions an author or byline. Returns "" when nothing plausible is found.
func author(doc *goquery.Document) string {
	if name := firstValue(doc, authorSelectors); name != "" {
		return name
	}

	candidate := doc.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return bylineClassRe.MatchString(class)
	}).First()
	if candidate.Length() == 0 {
		return ""
	}
	text := CleanText(candidate.Text())
	if n := utf8.RuneCountInString(text); n > 3 && n < 120 {
		return text
	}
	return ""
}

// firstValue returns the content attribute, datetime attribute or text of the
// first element matched by each selector in turn, stopping at the first
// non-empty value.
func firstValue(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if v := strings.TrimSpace(sel.AttrOr("content", "")); v != "" {
			return v
		}
		if v := strings.TrimSpace(sel.AttrOr("datetime", "")); v != "" {
			return v
		}
		if v := CleanText(sel.Text()); v != "" {
			return v
		}
	}
	return ""
}

// baseURL returns the URL relative references resolve against: the page URL,
// adjusted by a <base href> element when present.
func baseURL(doc *goquery.Document, page *url.URL) *url.URL {
	href, ok := doc.Find("base[href]").First().Attr("href")
	if !ok {
		return page
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return page
	}
	return page.ResolveReference(ref)
}

// Favicon returns the favicon service URL for a domain.
func Favicon(domain string) string {
	return fmt.Sprintf(faviconURL, domain)
}

// ReadTime estimates reading time of text at 200 words per minute, never
// less than one minute.
func ReadTime(text string) string {
	minutes := len(strings.Fields(text)) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
