package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/readmode"
	main "github.com/fwojciec/readmode/cmd/readmode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageHTML = `<html><head><title>Field Notes</title>
<meta name="author" content="Grace Hopper">
</head><body>
<nav><a href="/">Home</a></nav>
<article>
<h2>Setup</h2>
<p>Run the <a href="/install">installer</a> before anything else.</p>
<h2>Usage</h2>
<p>Start the service and open the dashboard.</p>
</article>
</body></html>`

// newPageServer serves pageHTML at /post and 404 everywhere else.
func newPageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/post" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(pageHTML))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func TestMain_Run_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prints the document as JSON", func(t *testing.T) {
		t.Parallel()

		srv := newPageServer(t)
		stdout := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"extract", srv.URL + "/post"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		var doc readmode.Document
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, "Field Notes", doc.Title)
		assert.Equal(t, "Grace Hopper", doc.Author)
		require.Len(t, doc.Sections, 2)
		assert.Equal(t, "Setup", doc.Sections[0].Title)
		assert.Equal(t, "Usage", doc.Sections[1].Title)
	})

	t.Run("prints plain text", func(t *testing.T) {
		t.Parallel()

		srv := newPageServer(t)
		stdout := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"extract", "--format", "text", srv.URL + "/post"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Field Notes")
		assert.Contains(t, stdout.String(), "Start the service and open the dashboard.")
		assert.NotContains(t, stdout.String(), "Home")
	})

	t.Run("prints a reader page", func(t *testing.T) {
		t.Parallel()

		srv := newPageServer(t)
		stdout := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"extract", "--format", "html", srv.URL + "/post"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "<title>Field Notes</title>")
		assert.Contains(t, stdout.String(), "<h2>Setup</h2>")
		assert.Contains(t, stdout.String(), "Start the service and open the dashboard.")
	})

	t.Run("reports each URL of a batch", func(t *testing.T) {
		t.Parallel()

		srv := newPageServer(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{
			"extract", srv.URL + "/post", srv.URL + "/missing", srv.URL + "/post#usage",
		}, stdout, stderr)
		require.NoError(t, err)

		var results []struct {
			URL       string             `json:"url"`
			Document  *readmode.Document `json:"document"`
			Duplicate bool               `json:"duplicate"`
			Error     string             `json:"error"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
		require.Len(t, results, 3)
		assert.NotNil(t, results[0].Document)
		assert.Nil(t, results[1].Document)
		assert.Contains(t, results[1].Error, "404")
		assert.True(t, results[2].Duplicate)
		assert.Contains(t, stderr.String(), "skip "+srv.URL+"/missing")
	})

	t.Run("fails on a missing page", func(t *testing.T) {
		t.Parallel()

		srv := newPageServer(t)
		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"extract", srv.URL + "/missing"}, &bytes.Buffer{}, stderr)

		assert.Equal(t, readmode.ENOTFOUND, readmode.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestMain_Run_Markdown(t *testing.T) {
	t.Parallel()

	srv := newPageServer(t)
	stdout := &bytes.Buffer{}

	err := newTestMain(t).Run(context.Background(), []string{"markdown", srv.URL + "/post"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "## Setup")
	assert.Contains(t, stdout.String(), srv.URL+"/install")
	assert.NotContains(t, stdout.String(), "Home")
}

// Not parallel: t.Setenv.
func TestMain_Run_RequiresGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	for _, args := range [][]string{
		{"summarize", "https://example.com"},
		{"serve", "--addr", "127.0.0.1:0"},
	} {
		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), args, &bytes.Buffer{}, stderr)

		require.Error(t, err, args[0])
		assert.Contains(t, err.Error(), "GEMINI_API_KEY", args[0])
		assert.Contains(t, stderr.String(), "aistudio.google.com", args[0])
	}
}

func TestMain_Run_ExtractToDirectory(t *testing.T) {
	t.Parallel()

	srv := newPageServer(t)
	out := filepath.Join(t.TempDir(), "export")
	stdout := &bytes.Buffer{}

	err := newTestMain(t).Run(context.Background(), []string{"extract", "--out", out, srv.URL + "/post"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Saved 1 documents")
	host := strings.ReplaceAll(strings.TrimPrefix(srv.URL, "http://"), ":", "_")
	content, err := os.ReadFile(filepath.Join(out, host, "post.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "title: Field Notes")
	assert.Contains(t, string(content), "## Setup")
}
