package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readmode"
)

var _ readmode.BookmarkService = (*LoggingBookmarkService)(nil)

// LoggingBookmarkService wraps a BookmarkService with debug logging.
type LoggingBookmarkService struct {
	next   readmode.BookmarkService
	logger *slog.Logger
}

// NewLoggingBookmarkService creates a new LoggingBookmarkService.
func NewLoggingBookmarkService(next readmode.BookmarkService, logger *slog.Logger) *LoggingBookmarkService {
	return &LoggingBookmarkService{next: next, logger: logger}
}

func (s *LoggingBookmarkService) CreateBookmark(ctx context.Context, b *readmode.Bookmark) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create bookmark",
			"user", b.UserID,
			"link", b.Link,
			"id", b.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateBookmark(ctx, b)
}

func (s *LoggingBookmarkService) FindBookmarks(ctx context.Context, userID string) (bookmarks []*readmode.Bookmark, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find bookmarks",
			"user", userID,
			"count", len(bookmarks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBookmarks(ctx, userID)
}

func (s *LoggingBookmarkService) DeleteBookmark(ctx context.Context, userID, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete bookmark",
			"user", userID,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteBookmark(ctx, userID, id)
}
