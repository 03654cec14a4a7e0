package fs_test

import (
	"testing"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "simple path",
			url:  "https://example.com/blog/2024/post",
			want: "example.com/blog/2024/post.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/blog/",
			want: "example.com/blog/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "example.com/index.md",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "example.com/index.md",
		},
		{
			name: "ignores query string and fragment",
			url:  "https://example.com/post?page=2#comments",
			want: "example.com/post.md",
		},
		{
			name: "lowercases the host and replaces the port separator",
			url:  "http://Example.com:8080/post",
			want: "example.com_8080/post.md",
		},
		{
			name: "stays below the host directory",
			url:  "https://example.com/../../etc/passwd",
			want: "example.com/etc/passwd.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects URLs without a host", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{"/relative/path", "http://../x", "http://[::1"} {
			_, err := fs.URLToPath(u)
			assert.Equal(t, readmode.EINVALID, readmode.ErrorCode(err), u)
		}
	})
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes frontmatter followed by the text", func(t *testing.T) {
		t.Parallel()

		doc := &readmode.Document{
			URL:         "https://example.com/post",
			Title:       "Post",
			Author:      "Ada",
			PublishDate: "2024-03-15",
			ReadTime:    "1 min read",
			Sections: []readmode.Section{{
				Title: "Intro",
				Subsections: []readmode.Subsection{{
					Title:        "Intro",
					ContentBlock: readmode.ContentBlock{Content: "Hello there."},
				}},
			}},
		}

		assert.Equal(t, `---
source: https://example.com/post
title: Post
author: Ada
published: 2024-03-15
read_time: 1 min read
---

# Post

## Intro

Hello there.
`, fs.FormatDocument(doc))
	})

	t.Run("omits an unknown publish date", func(t *testing.T) {
		t.Parallel()

		out := fs.FormatDocument(&readmode.Document{URL: "https://example.com", Title: "T", ReadTime: "1 min read"})

		assert.NotContains(t, out, "published:")
	})
}
