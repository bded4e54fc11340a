// Package storage provides the key-value blob store behind the module
// repositories. The terminal persists exactly two blobs, the product
// catalog and the order history, each a flat JSON array under a fixed key.
package storage

import (
	"context"
	"errors"
)

// Fixed blob keys. The front-end stored its state under the same names,
// so they must not change.
const (
	KeyProducts = "products"
	KeyOrders   = "orders"
)

var (
	// ErrNoBlob indicates no blob has been persisted under the key yet.
	ErrNoBlob = errors.New("blob not found")
	// ErrCorrupt indicates a persisted blob could not be decoded.
	// Repositories recover by falling back to their seed or empty state;
	// the error is returned alongside the fallback so callers can warn.
	ErrCorrupt = errors.New("blob corrupt")
)

// BlobStore defines whole-blob persistence. Writes overwrite the full
// value; there are no partial updates and no versioning.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
