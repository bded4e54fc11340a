package pos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/warungkita/warung-pos/internal/storage"
)

type blobRepo struct{ store storage.BlobStore }

// NewBlobRepository returns a Repository persisting the order history as
// one JSON array under the fixed "orders" key.
func NewBlobRepository(store storage.BlobStore) Repository {
	return &blobRepo{store: store}
}

// Load returns the persisted history, or an empty one if nothing has
// been saved yet. A corrupt blob is reset to empty and reported via
// storage.ErrCorrupt; the returned history is usable either way.
func (r *blobRepo) Load(ctx context.Context) ([]Order, error) {
	data, err := r.store.Get(ctx, storage.KeyOrders)
	if err != nil {
		if errors.Is(err, storage.ErrNoBlob) {
			return []Order{}, nil
		}
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		if saveErr := r.Save(ctx, []Order{}); saveErr != nil {
			return nil, saveErr
		}
		return []Order{}, fmt.Errorf("%w: orders: %v", storage.ErrCorrupt, err)
	}
	return orders, nil
}

func (r *blobRepo) Save(ctx context.Context, orders []Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("pos: encode orders: %w", err)
	}
	return r.store.Put(ctx, storage.KeyOrders, data)
}
