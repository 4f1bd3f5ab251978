package ports

import (
	"context"

	"shoedash-gateway/internal/features/catalog/domain"
)

// CatalogProvider proxies the backend's product, brand, and category
// resources through the authenticated pipeline.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, product domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, brand domain.Brand) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
