package goldmark_test

import (
	"testing"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *readmode.Document {
	return &readmode.Document{
		URL:         "https://example.com/post",
		Title:       "Field Notes",
		Domain:      "example.com",
		Favicon:     "https://www.google.com/s2/favicons?domain=example.com&sz=64",
		PublishDate: "2024-03-15",
		ReadTime:    "2 min read",
		Author:      "Grace Hopper",
		Sections: []readmode.Section{
			{
				Title: "Setup",
				Subsections: []readmode.Subsection{{
					Title: "Setup",
					ContentBlock: readmode.ContentBlock{
						Content: "Install the tools first.\n\n#### Details\n\nThen configure them.",
						Images:  []readmode.Image{{Src: "https://example.com/a b.png", Alt: "Diagram [1]"}},
					},
				}},
			},
			{
				Title: "Usage",
				Subsections: []readmode.Subsection{
					{Title: "Running", ContentBlock: readmode.ContentBlock{Content: "Start the service."}},
				},
			},
		},
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "## Setup\n\n"+
		"Install the tools first.\n\n#### Details\n\nThen configure them.\n\n"+
		"![Diagram \\[1\\]](<https://example.com/a b.png>)\n\n"+
		"## Usage\n\n### Running\n\nStart the service.",
		goldmark.Markdown(testDocument()))
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders the page", func(t *testing.T) {
		t.Parallel()

		out, err := goldmark.NewRenderer().Render(testDocument())
		require.NoError(t, err)

		assert.Contains(t, out, "<title>Field Notes</title>")
		assert.Contains(t, out, "<h1>Field Notes</h1>")
		assert.Contains(t, out, "Grace Hopper · 2024-03-15 · 2 min read")
		assert.Contains(t, out, `<a href="https://example.com/post">example.com</a>`)
		assert.Contains(t, out, "<h2>Setup</h2>")
		assert.Contains(t, out, "<h4>Details</h4>")
		assert.Contains(t, out, "<h3>Running</h3>")
		assert.Contains(t, out, "<p>Start the service.</p>")
		assert.Contains(t, out, `<img src="https://example.com/a%20b.png" alt="Diagram [1]">`)
		assert.Contains(t, out, `<link rel="icon" href="https://www.google.com/s2/favicons?domain=example.com&amp;sz=64">`)
	})

	t.Run("escapes metadata", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.Title = "<b>Bold</b> & brave"

		out, err := goldmark.NewRenderer().Render(doc)
		require.NoError(t, err)

		assert.Contains(t, out, "<h1>&lt;b&gt;Bold&lt;/b&gt; &amp; brave</h1>")
	})

	t.Run("drops raw HTML and script links from content", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.Sections[1].Subsections[0].Content = "<script>alert(1)</script>\n\n[click](javascript:alert(1))"

		out, err := goldmark.NewRenderer().Render(doc)
		require.NoError(t, err)

		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, `href="javascript:`)
	})

	t.Run("omits an empty favicon", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.Favicon = ""

		out, err := goldmark.NewRenderer().Render(doc)
		require.NoError(t, err)

		assert.NotContains(t, out, `rel="icon"`)
	})

	t.Run("returns EINVALID for a nil document", func(t *testing.T) {
		t.Parallel()

		_, err := goldmark.NewRenderer().Render(nil)

		assert.Equal(t, readmode.EINVALID, readmode.ErrorCode(err))
	})
}
