package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for temporary upload storage. Objects
// are written on receive, read back for extraction, and deleted once the
// request that created them finishes.
type ObjectStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}
