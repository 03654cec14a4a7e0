package mock

import (
	"context"

	"github.com/fwojciec/readmode"
)

var _ readmode.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of readmode.DocumentStore.
type DocumentStore struct {
	SaveFn   func(ctx context.Context, doc *readmode.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DocumentStore) Save(ctx context.Context, doc *readmode.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *DocumentStore) Commit() error {
	return s.CommitFn()
}

func (s *DocumentStore) Abort() error {
	return s.AbortFn()
}
