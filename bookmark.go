package readmode

import (
	"context"
	"time"
)

// Bookmark is a page a user saved for later reading.
type Bookmark struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	Snippet  string    `json:"snippet"`
	Favicon  string    `json:"favicon"`
	Category string    `json:"category"`
	Site     string    `json:"site"`
	SavedAt  time.Time `json:"savedAt"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.UserID == "" {
		return Errorf(EINVALID, "bookmark user ID required")
	}
	if b.Link == "" {
		return Errorf(EINVALID, "bookmark link required")
	}
	return nil
}

// BookmarkService represents a service for managing bookmarks.
type BookmarkService interface {
	// CreateBookmark saves a bookmark and sets its ID and SavedAt.
	// Saving a link the user already bookmarked returns the stored bookmark.
	CreateBookmark(ctx context.Context, b *Bookmark) error

	// FindBookmarks returns a user's bookmarks, newest first.
	FindBookmarks(ctx context.Context, userID string) ([]*Bookmark, error)

	// DeleteBookmark removes a user's bookmark.
	// Returns ENOTFOUND if the bookmark does not exist.
	DeleteBookmark(ctx context.Context, userID, id string) error
}

// BookmarkSearcher finds a user's bookmarks by free text over their
// title, snippet, site, category and link.
type BookmarkSearcher interface {
	// SearchBookmarks returns matching bookmarks, best match first.
	// Returns EINVALID if query is blank.
	SearchBookmarks(ctx context.Context, userID, query string) ([]*Bookmark, error)
}
