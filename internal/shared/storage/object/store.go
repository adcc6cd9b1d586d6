package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound indicates the requested object does not exist in its bucket.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for storing blobs in named buckets.
// Buckets are logical partitions (one per document category); how they map
// onto physical storage is up to the implementation.
type ObjectStore interface {
	Put(ctx context.Context, bucket, path, contentType string, r io.Reader) (int64, error)
	Get(ctx context.Context, bucket, path string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, bucket, path string) error
}
