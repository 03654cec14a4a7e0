package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/readmode"
	main "github.com/fwojciec/readmode/cmd/readmode"
	"github.com/fwojciec/readmode/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("converts the main content region", func(t *testing.T) {
		t.Parallel()

		var gotHTML, gotBase string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return `<html><body><nav>Menu</nav><main><p>Body</p></main></body></html>`, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html, baseURL string) (string, error) {
					gotHTML, gotBase = html, baseURL
					return "Body", nil
				},
			},
		}

		require.NoError(t, (&main.MarkdownCmd{URL: "https://example.com/a"}).Run(deps))
		assert.Equal(t, "Body\n", stdout.String())
		assert.Equal(t, "<main><p>Body</p></main>", gotHTML)
		assert.Equal(t, "https://example.com/a", gotBase)
	})

	t.Run("reports fetch errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "", readmode.Errorf(readmode.EUNAVAILABLE, "HTTP 503 for %s", url)
				},
			},
		}

		err := (&main.MarkdownCmd{URL: "https://example.com/a"}).Run(deps)

		assert.Equal(t, readmode.EUNAVAILABLE, readmode.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: HTTP 503 for https://example.com/a")
	})
}
