package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/repository"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
	"github.com/kasirpos/kasirpos/pkg/ptr"
)

type demoProduct struct {
	name     string
	category string
	price    float64
	stock    int
	image    string
}

var demoProducts = []demoProduct{
	{name: "Kopi Arabica Premium", category: "Minuman", price: 25000, stock: 50,
		image: "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=300"},
	{name: "Teh Hijau Organik", category: "Minuman", price: 15000, stock: 8,
		image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=300"},
	{name: "Croissant Butter", category: "Makanan", price: 12000, stock: 30,
		image: "https://images.unsplash.com/photo-1555507036-ab794f1eb0f4?w=300"},
	{name: "Sandwich Club", category: "Makanan", price: 35000, stock: 25,
		image: "https://images.unsplash.com/photo-1553909489-cd47e0ef937f?w=300"},
	{name: "Cappuccino", category: "Minuman", price: 28000, stock: 45,
		image: "https://images.unsplash.com/photo-1517701604599-bb29b565090c?w=300"},
	{name: "Muffin Blueberry", category: "Makanan", price: 18000, stock: 5,
		image: "https://images.unsplash.com/photo-1586444248902-2f64eddc13df?w=300"},
}

var demoCategories = []string{"Makanan", "Minuman", "Snack"}

// SeedDemo fills an empty catalog with the demo products and categories.
// A catalog that already holds products is left untouched.
func SeedDemo(ctx context.Context, store kv.Store, catalogRepo repository.CatalogRepository) error {
	return store.WithTx(ctx, func(tx kv.Store) error {
		repo := catalogRepo.WithStore(tx)

		existing, err := repo.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}

		now := time.Now().UTC()

		products := make([]model.Product, 0, len(demoProducts))
		for _, d := range demoProducts {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("generate uuid v7: %w", err)
			}
			products = append(products, model.Product{
				ID:        id,
				Name:      d.name,
				Price:     d.price,
				Stock:     d.stock,
				Category:  d.category,
				Image:     ptr.New(d.image),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := repo.SaveProducts(ctx, products); err != nil {
			return fmt.Errorf("save products: %w", err)
		}

		categories := make([]model.Category, 0, len(demoCategories))
		for _, name := range demoCategories {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("generate uuid v7: %w", err)
			}
			categories = append(categories, model.Category{
				ID:        id,
				Name:      name,
				CreatedAt: now,
			})
		}
		if err := repo.SaveCategories(ctx, categories); err != nil {
			return fmt.Errorf("save categories: %w", err)
		}

		return nil
	})
}
