package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/viant/afs"
)

const (
	fileMode = 0644
	dirMode  = 0755
)

// FileSystem implements stache.FileSystem on top of afs. Paths are absolute
// local paths, which afs treats as file:// URLs.
type FileSystem struct {
	fs afs.Service
}

// NewFileSystem creates a file system backed by the default afs service.
func NewFileSystem() *FileSystem {
	return &FileSystem{fs: afs.New()}
}

// Exists checks whether path exists
func (f *FileSystem) Exists(ctx context.Context, path string) (bool, error) {
	return f.fs.Exists(ctx, path)
}

// MkdirAll creates path and any missing parents
func (f *FileSystem) MkdirAll(ctx context.Context, path string) error {
	if err := f.fs.Create(ctx, path, dirMode, true); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the content of path
func (f *FileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return f.fs.DownloadWithURL(ctx, path)
}

// WriteFile replaces the content of path
func (f *FileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	exists, err := f.fs.Exists(ctx, path)
	if err != nil {
		return err
	}
	if exists {
		if err := f.fs.Delete(ctx, path); err != nil {
			return fmt.Errorf("failed to replace %s: %w", path, err)
		}
	}
	return f.fs.Upload(ctx, path, fileMode, bytes.NewReader(data))
}

// Remove deletes the file at path
func (f *FileSystem) Remove(ctx context.Context, path string) error {
	return f.fs.Delete(ctx, path)
}

// RemoveDir removes an empty directory. afs deletes directories
// recursively, so this goes straight to os.Remove.
func (f *FileSystem) RemoveDir(ctx context.Context, path string) error {
	return os.Remove(path)
}
