package object

import (
	"context"
	"io"
)

// Store defines the contract for persisting uploaded binary objects.
// Both backends expose put / public-url / remove semantics.
type Store interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	PublicURL(key string) string
	Remove(ctx context.Context, key string) error
}
