package mock

import (
	"context"

	"github.com/fwojciec/readmode"
)

var _ readmode.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of readmode.BookmarkService.
type BookmarkService struct {
	CreateBookmarkFn func(ctx context.Context, b *readmode.Bookmark) error
	FindBookmarksFn  func(ctx context.Context, userID string) ([]*readmode.Bookmark, error)
	DeleteBookmarkFn func(ctx context.Context, userID, id string) error
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, b *readmode.Bookmark) error {
	return s.CreateBookmarkFn(ctx, b)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, userID string) ([]*readmode.Bookmark, error) {
	return s.FindBookmarksFn(ctx, userID)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, userID, id string) error {
	return s.DeleteBookmarkFn(ctx, userID, id)
}

var _ readmode.BookmarkSearcher = (*BookmarkSearcher)(nil)

// BookmarkSearcher is a mock implementation of readmode.BookmarkSearcher.
type BookmarkSearcher struct {
	SearchBookmarksFn func(ctx context.Context, userID, query string) ([]*readmode.Bookmark, error)
}

func (s *BookmarkSearcher) SearchBookmarks(ctx context.Context, userID, query string) ([]*readmode.Bookmark, error) {
	return s.SearchBookmarksFn(ctx, userID, query)
}
