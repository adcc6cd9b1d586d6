package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"studentdocs-backend/internal/shared/storage/object"
)

// Store implements ObjectStore using the local filesystem. Each logical
// bucket becomes a directory under the base dir.
type Store struct {
	baseDir string
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) object.ObjectStore {
	return &Store{baseDir: baseDir}
}

// Put writes the reader contents to disk under bucket/path.
func (s *Store) Put(ctx context.Context, bucket, path, contentType string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fullPath, err := s.resolve(bucket, path)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	_ = contentType
	return written, nil
}

// Get opens a stored object for reading.
func (s *Store) Get(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath, err := s.resolve(bucket, path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, object.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Delete removes a stored object. A missing key is not an error.
func (s *Store) Delete(ctx context.Context, bucket, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

func (s *Store) resolve(bucket, path string) (string, error) {
	cleanBucket := filepath.Clean(bucket)
	cleanPath := filepath.Clean(path)
	if cleanBucket == "." || strings.HasPrefix(cleanBucket, "..") || filepath.IsAbs(cleanBucket) {
		return "", fmt.Errorf("invalid bucket %q", bucket)
	}
	if cleanPath == "." || strings.HasPrefix(cleanPath, "..") || filepath.IsAbs(cleanPath) {
		return "", fmt.Errorf("invalid storage path %q", path)
	}
	return filepath.Join(s.baseDir, cleanBucket, cleanPath), nil
}

var _ object.ObjectStore = (*Store)(nil)
