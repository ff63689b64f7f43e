package repository

import (
	"context"
	"fmt"

	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

type CatalogRepository interface {
	WithStore(store kv.Store) CatalogRepository
	ListProducts(ctx context.Context) ([]model.Product, error)
	SaveProducts(ctx context.Context, products []model.Product) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, categories []model.Category) error
}

type catalogRepository struct {
	store kv.Store
}

func NewCatalogRepository(store kv.Store) CatalogRepository {
	return &catalogRepository{store: store}
}

func (r catalogRepository) WithStore(store kv.Store) CatalogRepository {
	return &catalogRepository{store: store}
}

func (r catalogRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := readCollection[model.Product](ctx, r.store, productsKey)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return products, nil
}

func (r catalogRepository) SaveProducts(ctx context.Context, products []model.Product) error {
	if err := writeCollection(ctx, r.store, productsKey, products); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}

func (r catalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := readCollection[model.Category](ctx, r.store, categoriesKey)
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return categories, nil
}

func (r catalogRepository) SaveCategories(ctx context.Context, categories []model.Category) error {
	if err := writeCollection(ctx, r.store, categoriesKey, categories); err != nil {
		return fmt.Errorf("write categories: %w", err)
	}
	return nil
}
