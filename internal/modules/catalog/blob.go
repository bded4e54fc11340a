package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/warungkita/warung-pos/internal/storage"
)

type blobRepo struct{ store storage.BlobStore }

// NewBlobRepository returns a Repository persisting the catalog as one
// JSON array under the fixed "products" key.
func NewBlobRepository(store storage.BlobStore) Repository {
	return &blobRepo{store: store}
}

// Load returns the persisted catalog. On first run it seeds the default
// catalog and persists it immediately. A corrupt blob is replaced by the
// seed and reported via storage.ErrCorrupt so the caller can warn; the
// returned catalog is usable either way.
func (r *blobRepo) Load(ctx context.Context) ([]Product, error) {
	data, err := r.store.Get(ctx, storage.KeyProducts)
	if err != nil {
		if errors.Is(err, storage.ErrNoBlob) {
			seed := SeedProducts()
			if err := r.Save(ctx, seed); err != nil {
				return nil, err
			}
			return seed, nil
		}
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		seed := SeedProducts()
		if saveErr := r.Save(ctx, seed); saveErr != nil {
			return nil, saveErr
		}
		return seed, fmt.Errorf("%w: products: %v", storage.ErrCorrupt, err)
	}
	return products, nil
}

func (r *blobRepo) Save(ctx context.Context, products []Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog: encode products: %w", err)
	}
	return r.store.Put(ctx, storage.KeyProducts, data)
}
