// Package htmltomarkdown exports a page's main content region as Markdown.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/readmode"
)

// Ensure Converter implements readmode.Converter at compile time.
var _ readmode.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Relative references are
// made absolute against the scheme and host of baseURL.
func (c *Converter) Convert(html string, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", readmode.Errorf(readmode.EINVALID, "empty HTML input")
	}

	domain, err := domainOf(baseURL)
	if err != nil {
		return "", err
	}

	var result string
	if domain != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(domain))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", readmode.Errorf(readmode.EMALFORMED, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(result), nil
}

// domainOf returns the scheme and host of baseURL, or "" when baseURL is
// empty or relative.
func domainOf(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", readmode.Errorf(readmode.EINVALID, "invalid base URL: %v", err)
	}
	if u.Host == "" {
		return "", nil
	}
	return u.Scheme + "://" + u.Host, nil
}
