package pos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkita/warung-pos/internal/storage"
)

func TestOrderHistoryEmptyOnFirstRun(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewBlobRepository(store)

	orders, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderHistoryRoundtrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewBlobRepository(store)
	ctx := context.Background()

	saved := []Order{{
		ID:           "o1",
		CustomerName: "Budi",
		Items:        []CartItem{{ID: "1", Name: "Nasi Goreng", Price: 25000, Quantity: 2}},
		Total:        50000,
		Date:         time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestOrderHistoryCorruptBlobFallsBackToEmpty(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo := NewBlobRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, storage.KeyOrders, []byte("not json at all")))

	orders, err := repo.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
	assert.Empty(t, orders)

	orders, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
