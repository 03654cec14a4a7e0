package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/goquery"
	"github.com/fwojciec/readmode/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonLDArticle = `<!DOCTYPE html>
<html>
<head>
<title>Release notes - Example Blog</title>
<script type="application/ld+json">
{
	"@context": "https://schema.org",
	"@type": "NewsArticle",
	"headline": "Release notes",
	"datePublished": "2024-03-15T09:30:00Z",
	"author": {"@type": "Person", "name": "Ada Lovelace"}
}
</script>
</head>
<body>
<article>
<h1>Release notes</h1>
<p>This release brings a faster parser and many smaller fixes to the toolchain.</p>
<p>Upgrading requires no changes to existing configuration files.</p>
</article>
</body>
</html>`

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads author and date from JSON-LD", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewMetadataExtractor()
		meta, err := ext.ExtractMetadata(jsonLDArticle, "https://blog.example.com/release")

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", meta.Author)
		assert.Equal(t, 2024, meta.PublishedAt.Year())
		assert.NotEmpty(t, meta.Title)
	})

	t.Run("leaves unknown fields empty", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content without any metadata at all.</p></body></html>`

		ext := trafilatura.NewMetadataExtractor()
		meta, err := ext.ExtractMetadata(html, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, meta.Author)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewMetadataExtractor()
		_, err := ext.ExtractMetadata("", "https://example.com")

		require.Error(t, err)
		assert.Equal(t, readmode.EMALFORMED, readmode.ErrorCode(err))
	})

	t.Run("fills document metadata for the reading-mode extractor", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(goquery.WithMetadataExtractor(trafilatura.NewMetadataExtractor()))
		doc, err := ext.Extract(jsonLDArticle, "https://blog.example.com/release")

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", doc.Author)
		assert.Equal(t, "2024-03-15", doc.PublishDate)
	})
}
