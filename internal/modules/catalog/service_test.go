package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	products []Product

	loadErr error
	saveErr error

	saveCalls int
}

func (m *mockRepository) Load(ctx context.Context) ([]Product, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockRepository) Save(ctx context.Context, products []Product) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.products = products
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateProductAppendsAndPersists(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)

	p, err := svc.CreateProduct(context.Background(), ProductRequest{
		Name: "Sate Ayam", Price: 20000, Stock: 40, Category: "Makanan",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Sate Ayam", p.Name)
	assert.Len(t, repo.products, 4)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestUpdateProductReplacesAllFieldsExceptID(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)

	p, err := svc.UpdateProduct(context.Background(), "2", ProductRequest{
		Name: "Es Jeruk", Price: 7000, Stock: 30, Category: "Minuman",
	})
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)
	assert.Equal(t, "Es Jeruk", p.Name)
	assert.Equal(t, 7000.0, p.Price)
	assert.Equal(t, 30, p.Stock)
}

func TestUpdateProductNotFound(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)

	_, err := svc.UpdateProduct(context.Background(), "missing", ProductRequest{Name: "X", Category: "Y"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestDeleteProduct(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)

	require.NoError(t, svc.DeleteProduct(context.Background(), "2"))
	assert.Len(t, repo.products, 2)
	for _, p := range repo.products {
		assert.NotEqual(t, "2", p.ID)
	}
}

func TestDeleteProductNotFoundLeavesCatalogUnchanged(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)

	err := svc.DeleteProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, SeedProducts(), repo.products)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestFilterProductsMatchesNameAndCategory(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)
	ctx := context.Background()

	matched, err := svc.FilterProducts(ctx, "goreng")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Nasi Goreng", matched[0].Name)
	assert.Equal(t, "Ayam Goreng", matched[1].Name)

	// category match, case-insensitive
	matched, err = svc.FilterProducts(ctx, "MINUM")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Es Teh", matched[0].Name)
}

func TestFilterProductsEmptyQueryReturnsAll(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)

	all, err := svc.FilterProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, SeedProducts(), all)
}

func TestFilterProductsNoMatch(t *testing.T) {
	repo := &mockRepository{products: SeedProducts()}
	svc := newTestService(repo)

	matched, err := svc.FilterProducts(context.Background(), "rendang")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestServiceSurfacesLoadError(t *testing.T) {
	boom := errors.New("disk gone")
	svc := newTestService(&mockRepository{loadErr: boom})

	_, err := svc.ListProducts(context.Background())
	assert.ErrorIs(t, err, boom)
}
