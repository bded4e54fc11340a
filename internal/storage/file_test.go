package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyProducts, []byte(`[{"id":"1"}]`)))

	data, err := store.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), KeyOrders)
	assert.ErrorIs(t, err, ErrNoBlob)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyOrders, []byte(`[]`)))
	require.NoError(t, store.Put(ctx, KeyOrders, []byte(`[{"id":"a"}]`)))

	data, err := store.Get(ctx, KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(data))
}
