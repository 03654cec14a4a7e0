package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

// clock returns a Now function that advances one minute per call.
func clock() func() time.Time {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestBookmarkService_CreateBookmark(t *testing.T) {
	t.Parallel()

	t.Run("creates bookmark with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		b := &readmode.Bookmark{
			UserID:   "user-1",
			Title:    "Go",
			Link:     "https://go.dev",
			Snippet:  "The Go programming language",
			Category: "Technology",
			Site:     "go.dev",
		}

		err := svc.CreateBookmark(ctx, b)
		require.NoError(t, err)

		assert.NotEmpty(t, b.ID, "ID should be generated")
		assert.False(t, b.SavedAt.IsZero(), "SavedAt should be set")
	})

	t.Run("returns error for invalid bookmark", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)

		err := svc.CreateBookmark(context.Background(), &readmode.Bookmark{UserID: "user-1"})
		require.Error(t, err)
		assert.Equal(t, readmode.EINVALID, readmode.ErrorCode(err))
	})

	t.Run("returns the stored bookmark when a link is saved twice", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		first := &readmode.Bookmark{UserID: "user-1", Link: "https://go.dev", Title: "First"}
		require.NoError(t, svc.CreateBookmark(ctx, first))

		second := &readmode.Bookmark{UserID: "user-1", Link: "https://go.dev", Title: "Second"}
		require.NoError(t, svc.CreateBookmark(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "First", second.Title)

		bookmarks, err := svc.FindBookmarks(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, bookmarks, 1)
	})

	t.Run("allows different users to save the same link", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		a := &readmode.Bookmark{UserID: "user-1", Link: "https://go.dev"}
		b := &readmode.Bookmark{UserID: "user-2", Link: "https://go.dev"}
		require.NoError(t, svc.CreateBookmark(ctx, a))
		require.NoError(t, svc.CreateBookmark(ctx, b))

		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestBookmarkService_FindBookmarks(t *testing.T) {
	t.Parallel()

	t.Run("returns a user's bookmarks newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		svc.Now = clock()
		ctx := context.Background()

		for _, link := range []string{"https://a.example", "https://b.example", "https://c.example"} {
			require.NoError(t, svc.CreateBookmark(ctx, &readmode.Bookmark{UserID: "user-1", Link: link}))
		}
		require.NoError(t, svc.CreateBookmark(ctx, &readmode.Bookmark{UserID: "user-2", Link: "https://d.example"}))

		bookmarks, err := svc.FindBookmarks(ctx, "user-1")
		require.NoError(t, err)

		require.Len(t, bookmarks, 3)
		assert.Equal(t, "https://c.example", bookmarks[0].Link)
		assert.Equal(t, "https://b.example", bookmarks[1].Link)
		assert.Equal(t, "https://a.example", bookmarks[2].Link)
		assert.Equal(t, time.Date(2025, 1, 1, 12, 3, 0, 0, time.UTC), bookmarks[0].SavedAt)
	})

	t.Run("round-trips every field", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		b := &readmode.Bookmark{
			UserID:   "user-1",
			Title:    "Go",
			Link:     "https://go.dev",
			Snippet:  "Build simple, secure, scalable systems",
			Favicon:  "https://www.google.com/s2/favicons?sz=64&domain_url=https://go.dev",
			Category: "Technology",
			Site:     "go.dev",
		}
		require.NoError(t, svc.CreateBookmark(ctx, b))

		bookmarks, err := svc.FindBookmarks(ctx, "user-1")
		require.NoError(t, err)

		require.Len(t, bookmarks, 1)
		assert.Equal(t, b.ID, bookmarks[0].ID)
		assert.Equal(t, b.Snippet, bookmarks[0].Snippet)
		assert.Equal(t, b.Favicon, bookmarks[0].Favicon)
		assert.True(t, b.SavedAt.Equal(bookmarks[0].SavedAt))
	})

	t.Run("returns empty slice for a user without bookmarks", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)

		bookmarks, err := svc.FindBookmarks(context.Background(), "nobody")
		require.NoError(t, err)
		assert.NotNil(t, bookmarks)
		assert.Empty(t, bookmarks)
	})
}

func TestBookmarkService_DeleteBookmark(t *testing.T) {
	t.Parallel()

	t.Run("deletes the bookmark", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		b := &readmode.Bookmark{UserID: "user-1", Link: "https://go.dev"}
		require.NoError(t, svc.CreateBookmark(ctx, b))

		require.NoError(t, svc.DeleteBookmark(ctx, "user-1", b.ID))

		bookmarks, err := svc.FindBookmarks(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, bookmarks)
	})

	t.Run("returns ENOTFOUND for a missing bookmark", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)

		err := svc.DeleteBookmark(context.Background(), "user-1", "missing")
		assert.Equal(t, readmode.ENOTFOUND, readmode.ErrorCode(err))
	})

	t.Run("does not delete another user's bookmark", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookmarkService(db)
		ctx := context.Background()

		b := &readmode.Bookmark{UserID: "user-1", Link: "https://go.dev"}
		require.NoError(t, svc.CreateBookmark(ctx, b))

		err := svc.DeleteBookmark(ctx, "user-2", b.ID)
		assert.Equal(t, readmode.ENOTFOUND, readmode.ErrorCode(err))
	})
}
