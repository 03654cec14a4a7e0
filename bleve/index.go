// Package bleve provides full-text search over bookmarks using a bleve
// index kept in step with the bookmark store.
package bleve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/fwojciec/readmode"
)

// MaxResults caps the number of bookmarks a search returns.
const MaxResults = 50

var (
	_ readmode.BookmarkService  = (*BookmarkIndex)(nil)
	_ readmode.BookmarkSearcher = (*BookmarkIndex)(nil)
)

// BookmarkIndex wraps a BookmarkService and indexes every bookmark it
// creates. Bookmarks saved before the index existed are not searchable.
type BookmarkIndex struct {
	next  readmode.BookmarkService
	index bleve.Index
}

// Open opens the index at path, creating it if it does not exist.
func Open(path string, next readmode.BookmarkService) (*BookmarkIndex, error) {
	index, err := bleve.Open(path)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		index, err = bleve.New(path, newMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("open bookmark index %s: %w", path, err)
	}
	return &BookmarkIndex{next: next, index: index}, nil
}

// NewMemIndex creates an index held only in memory.
func NewMemIndex(next readmode.BookmarkService) (*BookmarkIndex, error) {
	index, err := bleve.NewMemOnly(newMapping())
	if err != nil {
		return nil, fmt.Errorf("create bookmark index: %w", err)
	}
	return &BookmarkIndex{next: next, index: index}, nil
}

// Close closes the index.
func (x *BookmarkIndex) Close() error {
	return x.index.Close()
}

func newMapping() *mapping.IndexMappingImpl {
	user := bleve.NewKeywordFieldMapping()
	user.IncludeInAll = false

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("user_id", user)
	for _, field := range []string{"title", "snippet", "site", "category", "link"} {
		doc.AddFieldMappingsAt(field, bleve.NewTextFieldMapping())
	}

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// CreateBookmark saves b through the wrapped service, then indexes it.
func (x *BookmarkIndex) CreateBookmark(ctx context.Context, b *readmode.Bookmark) error {
	if err := x.next.CreateBookmark(ctx, b); err != nil {
		return err
	}
	if err := x.index.Index(b.ID, map[string]any{
		"user_id":  b.UserID,
		"title":    b.Title,
		"snippet":  b.Snippet,
		"site":     b.Site,
		"category": b.Category,
		"link":     b.Link,
	}); err != nil {
		return fmt.Errorf("index bookmark %s: %w", b.ID, err)
	}
	return nil
}

// FindBookmarks delegates to the wrapped service.
func (x *BookmarkIndex) FindBookmarks(ctx context.Context, userID string) ([]*readmode.Bookmark, error) {
	return x.next.FindBookmarks(ctx, userID)
}

// DeleteBookmark deletes through the wrapped service, then drops the
// bookmark from the index.
func (x *BookmarkIndex) DeleteBookmark(ctx context.Context, userID, id string) error {
	if err := x.next.DeleteBookmark(ctx, userID, id); err != nil {
		return err
	}
	if err := x.index.Delete(id); err != nil {
		return fmt.Errorf("unindex bookmark %s: %w", id, err)
	}
	return nil
}

// SearchBookmarks returns the user's bookmarks matching query, best match
// first. Index entries whose bookmark no longer exists are skipped.
func (x *BookmarkIndex) SearchBookmarks(ctx context.Context, userID, query string) ([]*readmode.Bookmark, error) {
	if strings.TrimSpace(query) == "" {
		return nil, readmode.Errorf(readmode.EINVALID, "search query required")
	}

	user := bleve.NewTermQuery(userID)
	user.SetField("user_id")
	text := bleve.NewMatchQuery(query)

	req := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(user, text), MaxResults, 0, false)
	res, err := x.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search bookmarks: %w", err)
	}

	bookmarks, err := x.next.FindBookmarks(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*readmode.Bookmark, len(bookmarks))
	for _, b := range bookmarks {
		byID[b.ID] = b
	}

	out := make([]*readmode.Bookmark, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if b, ok := byID[hit.ID]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}
