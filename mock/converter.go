package mock

import "github.com/fwojciec/readmode"

var _ readmode.Converter = (*Converter)(nil)

// Converter is a mock implementation of readmode.Converter.
type Converter struct {
	ConvertFn func(html, baseURL string) (string, error)
}

func (c *Converter) Convert(html, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}

var _ readmode.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of readmode.Renderer.
type Renderer struct {
	RenderFn func(doc *readmode.Document) (string, error)
}

func (r *Renderer) Render(doc *readmode.Document) (string, error) {
	return r.RenderFn(doc)
}
