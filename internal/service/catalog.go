package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/repository"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

type CreateProductParams struct {
	Name     string
	Price    float64
	Stock    int
	Category string
	Barcode  *string
	Image    *string
}

// UpdateProductParams carries a partial edit; nil fields keep their value.
type UpdateProductParams struct {
	Name     *string
	Price    *float64
	Stock    *int
	Category *string
	Barcode  *string
	Image    *string
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (model.Category, error)
}

type catalogService struct {
	store       kv.Store
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(store kv.Store, catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{
		store:       store,
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog repository list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if err := validateProductFields(params.Name, params.Price, params.Stock, params.Category); err != nil {
		return model.Product{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	now := time.Now().UTC()
	product := model.Product{
		ID:        id,
		Name:      params.Name,
		Price:     model.RoundCurrency(params.Price),
		Stock:     params.Stock,
		Category:  params.Category,
		Barcode:   params.Barcode,
		Image:     params.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.WithTx(ctx, func(tx kv.Store) error {
		repo := s.catalogRepo.WithStore(tx)

		products, err := repo.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}

		products = append(products, product)
		if err := repo.SaveProducts(ctx, products); err != nil {
			return fmt.Errorf("save products: %w", err)
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("store with tx: %w", err)
	}

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (model.Product, error) {
	var updated model.Product

	if err := s.store.WithTx(ctx, func(tx kv.Store) error {
		repo := s.catalogRepo.WithStore(tx)

		products, err := repo.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}

		i := slices.IndexFunc(products, func(p model.Product) bool { return p.ID == id })
		if i == -1 {
			return apperr.ProductNotFoundErr
		}

		product := products[i]
		if params.Name != nil {
			product.Name = *params.Name
		}
		if params.Price != nil {
			product.Price = model.RoundCurrency(*params.Price)
		}
		if params.Stock != nil {
			product.Stock = *params.Stock
		}
		if params.Category != nil {
			product.Category = *params.Category
		}
		if params.Barcode != nil {
			product.Barcode = params.Barcode
		}
		if params.Image != nil {
			product.Image = params.Image
		}

		if err := validateProductFields(product.Name, product.Price, product.Stock, product.Category); err != nil {
			return err
		}

		product.UpdatedAt = time.Now().UTC()
		products[i] = product

		if err := repo.SaveProducts(ctx, products); err != nil {
			return fmt.Errorf("save products: %w", err)
		}

		updated = product
		return nil
	}); err != nil {
		return model.Product{}, err
	}

	return updated, nil
}

// DeleteProduct removes a product by id. Deleting an absent id is not an
// error; the call reports false and leaves the catalog untouched.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false

	if err := s.store.WithTx(ctx, func(tx kv.Store) error {
		repo := s.catalogRepo.WithStore(tx)

		products, err := repo.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}

		remaining := slices.DeleteFunc(products, func(p model.Product) bool { return p.ID == id })
		if len(remaining) == len(products) {
			return nil
		}

		if err := repo.SaveProducts(ctx, remaining); err != nil {
			return fmt.Errorf("save products: %w", err)
		}

		deleted = true
		return nil
	}); err != nil {
		return false, fmt.Errorf("store with tx: %w", err)
	}

	return deleted, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog repository list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory appends a category. Duplicate names are accepted; the
// catalog never enforced name uniqueness.
func (s *catalogService) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return model.Category{}, apperr.ValidationErr.WithMsg("category name is required")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Category{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	category := model.Category{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.WithTx(ctx, func(tx kv.Store) error {
		repo := s.catalogRepo.WithStore(tx)

		categories, err := repo.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		categories = append(categories, category)
		if err := repo.SaveCategories(ctx, categories); err != nil {
			return fmt.Errorf("save categories: %w", err)
		}

		return nil
	}); err != nil {
		return model.Category{}, fmt.Errorf("store with tx: %w", err)
	}

	return category, nil
}

func validateProductFields(name string, price float64, stock int, category string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return apperr.ValidationErr.WithMsg("product name is required")
	case price < 0:
		return apperr.ValidationErr.WithMsg("price must not be negative")
	case stock < 0:
		return apperr.ValidationErr.WithMsg("stock must not be negative")
	case strings.TrimSpace(category) == "":
		return apperr.ValidationErr.WithMsg("category is required")
	default:
		return nil
	}
}
