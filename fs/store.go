package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/readmode"
)

// Ensure FileStore implements readmode.DocumentStore at compile time.
var _ readmode.DocumentStore = (*FileStore)(nil)

// FileStore implements readmode.DocumentStore with atomic update semantics.
// Documents are saved to a temporary directory, then moved into place on
// Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Dir returns the directory documents end up in after Commit.
func (s *FileStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes doc below the temporary directory.
func (s *FileStore) Save(ctx context.Context, doc *readmode.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

// Commit replaces the final directory with everything saved so far.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.RemoveAll(s.Dir()); err != nil {
		return fmt.Errorf("remove previous output: %w", err)
	}
	if err := os.Rename(s.tempDir(), s.Dir()); err != nil {
		return fmt.Errorf("move output into place: %w", err)
	}
	return nil
}

// Abort discards everything saved so far.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
