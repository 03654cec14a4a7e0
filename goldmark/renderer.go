// Package goldmark renders reading-mode documents as HTML pages using the
// goldmark Markdown engine.
package goldmark

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/fwojciec/readmode"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var _ readmode.Renderer = (*Renderer)(nil)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Doc.Title}}</title>
{{- with .Doc.Favicon}}
<link rel="icon" href="{{.}}">
{{- end}}
<style>
body{max-width:42rem;margin:2rem auto;padding:0 1rem;font:18px/1.6 Georgia,serif;color:#222}
img{max-width:100%}
.meta{color:#666;font-size:.9rem}
</style>
</head>
<body>
<article>
<h1>{{.Doc.Title}}</h1>
<p class="meta">{{.Doc.Author}}{{with .Doc.PublishDate}} · {{.}}{{end}} · {{.Doc.ReadTime}} · <a href="{{.Doc.URL}}">{{.Doc.Domain}}</a></p>
{{.Body}}
</article>
</body>
</html>
`

type pageData struct {
	Doc  *readmode.Document
	Body template.HTML
}

// Renderer turns a Document into a self-contained HTML reading view.
// Raw HTML and dangerous link schemes in the content are dropped.
type Renderer struct {
	md   goldmark.Markdown
	page *template.Template
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md:   goldmark.New(goldmark.WithExtensions(extension.Linkify)),
		page: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render returns the HTML page for doc.
func (r *Renderer) Render(doc *readmode.Document) (string, error) {
	if doc == nil {
		return "", readmode.Errorf(readmode.EINVALID, "no document to render")
	}

	var body bytes.Buffer
	if err := r.md.Convert([]byte(Markdown(doc)), &body); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	var out bytes.Buffer
	if err := r.page.Execute(&out, pageData{Doc: doc, Body: template.HTML(body.String())}); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return out.String(), nil
}

// Markdown renders the sections of doc as Markdown, without the page title.
// Subsection titles repeating their section title are omitted, and images
// follow the text of their subsection.
func Markdown(doc *readmode.Document) string {
	var parts []string
	for _, s := range doc.Sections {
		if s.Title != doc.Title {
			parts = append(parts, "## "+s.Title)
		}
		for _, sub := range s.Subsections {
			if sub.Title != s.Title {
				parts = append(parts, "### "+sub.Title)
			}
			if sub.Content != "" {
				parts = append(parts, sub.Content)
			}
			for _, img := range sub.Images {
				parts = append(parts, image(img))
			}
		}
	}
	return strings.Join(parts, "\n\n")
}

var altEscaper = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`)

// image renders img with an angle-bracket destination so that spaces and
// parentheses in the URL survive.
func image(img readmode.Image) string {
	src := strings.NewReplacer("<", "%3C", ">", "%3E", "\n", "").Replace(img.Src)
	return fmt.Sprintf("![%s](<%s>)", altEscaper.Replace(img.Alt), src)
}
