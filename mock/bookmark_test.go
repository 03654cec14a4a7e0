package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/readmode"
	"github.com/fwojciec/readmode/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkService_CreateBookmark(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateBookmarkFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *readmode.Bookmark
		s := &mock.BookmarkService{
			CreateBookmarkFn: func(_ context.Context, b *readmode.Bookmark) error {
				calledWith = b
				return nil
			},
		}

		b := &readmode.Bookmark{
			UserID: "user-1",
			Link:   "https://example.com/article",
			Title:  "Article",
		}

		err := s.CreateBookmark(context.Background(), b)

		require.NoError(t, err)
		assert.Same(t, b, calledWith)
	})

	t.Run("returns error from CreateBookmarkFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := readmode.Errorf(readmode.EINVALID, "bookmark link required")
		s := &mock.BookmarkService{
			CreateBookmarkFn: func(_ context.Context, _ *readmode.Bookmark) error {
				return expectedErr
			},
		}

		err := s.CreateBookmark(context.Background(), &readmode.Bookmark{})

		assert.Equal(t, expectedErr, err)
	})
}
