package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readmode"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ readmode.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements readmode.BookmarkService using SQLite.
type BookmarkService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db, Now: time.Now}
}

// hashLink computes the xxHash of a link as a hex string.
func hashLink(link string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(link))
}

// CreateBookmark saves b. If the user already bookmarked the same link, b is
// filled from the stored bookmark instead.
func (s *BookmarkService) CreateBookmark(ctx context.Context, b *readmode.Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	linkHash := hashLink(b.Link)
	existing, err := s.findBookmark(ctx, `WHERE user_id = ? AND link_hash = ?`, b.UserID, linkHash)
	if err == nil {
		*b = *existing
		return nil
	}
	if readmode.ErrorCode(err) != readmode.ENOTFOUND {
		return err
	}

	b.ID = uuid.New().String()
	b.SavedAt = s.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, user_id, title, link, link_hash, snippet, favicon, category, site, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.UserID, b.Title, b.Link, linkHash, b.Snippet, b.Favicon, b.Category, b.Site,
		formatTime(b.SavedAt))

	return err
}

// FindBookmarks returns a user's bookmarks, newest first.
// Returns an empty slice (not nil) if the user has none.
func (s *BookmarkService) FindBookmarks(ctx context.Context, userID string) ([]*readmode.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, link, snippet, favicon, category, site, saved_at
		FROM bookmarks
		WHERE user_id = ?
		ORDER BY saved_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []*readmode.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

// DeleteBookmark removes a user's bookmark.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return readmode.Errorf(readmode.ENOTFOUND, "bookmark not found")
	}

	return nil
}

func (s *BookmarkService) findBookmark(ctx context.Context, where string, args ...any) (*readmode.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, link, snippet, favicon, category, site, saved_at
		FROM bookmarks `+where, args...)

	b, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, readmode.Errorf(readmode.ENOTFOUND, "bookmark not found")
	}
	return b, err
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(sc scanner) (*readmode.Bookmark, error) {
	var b readmode.Bookmark
	var savedAt string

	if err := sc.Scan(&b.ID, &b.UserID, &b.Title, &b.Link, &b.Snippet, &b.Favicon,
		&b.Category, &b.Site, &savedAt); err != nil {
		return nil, err
	}

	var err error
	if b.SavedAt, err = parseTime(savedAt, "saved_at"); err != nil {
		return nil, err
	}

	return &b, nil
}
