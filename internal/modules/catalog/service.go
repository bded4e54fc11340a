package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/warungkita/warung-pos/internal/storage"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]Product, error)

	// FilterProducts returns products whose name or category contains
	// the query, case-insensitively. An empty query returns the full
	// catalog. The catalog is never mutated.
	FilterProducts(ctx context.Context, query string) ([]Product, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	mu     sync.Mutex // serialises load-modify-save cycles
}

// NewService creates a new catalog service.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// load reads the catalog, treating a corrupt blob as recoverable: the
// repository has already reset it to the seed, so we warn and continue.
func (s *service) load(ctx context.Context) ([]Product, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			s.logger.Warn("catalog blob corrupt, reset to seed", slog.Any("error", err))
			return products, nil
		}
		return nil, err
	}
	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	p := Product{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	}
	if err := s.repo.Save(ctx, append(products, p)); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i] = Product{
			ID:       id,
			Name:     req.Name,
			Price:    req.Price,
			Stock:    req.Stock,
			Category: req.Category,
		}
		if err := s.repo.Save(ctx, products); err != nil {
			return nil, err
		}
		p := products[i]
		return &p, nil
	}
	return nil, ErrNotFound
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		return s.repo.Save(ctx, append(products[:i:i], products[i+1:]...))
	}
	return ErrNotFound
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.load(ctx)
}

func (s *service) FilterProducts(ctx context.Context, query string) ([]Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return products, nil
	}
	q := strings.ToLower(query)
	var matched []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
