package catalog

import (
	"context"
	"errors"
)

// ErrNotFound indicates the referenced product id is absent from the
// catalog.
var ErrNotFound = errors.New("product not found")

// Repository defines catalog persistence. The catalog is always loaded
// and saved whole; there are no per-row operations.
type Repository interface {
	Load(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, products []Product) error
}
