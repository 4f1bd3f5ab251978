package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/catalog/domain"
)

// BackendCatalogAdapter implements the CatalogProvider interface against the
// commerce backend's REST API through the authenticated pipeline.
type BackendCatalogAdapter struct {
	client *backend.Client
}

// NewBackendCatalogAdapter creates a new BackendCatalogAdapter.
func NewBackendCatalogAdapter(client *backend.Client) *BackendCatalogAdapter {
	return &BackendCatalogAdapter{client: client}
}

func (a *BackendCatalogAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := a.client.GetJSON(ctx, "/products", &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (a *BackendCatalogAdapter) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := a.client.GetJSON(ctx, "/products/"+url.PathEscape(productID), &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return &product, nil
}

func (a *BackendCatalogAdapter) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var created domain.Product
	if err := a.client.PostJSON(ctx, "/products", product, &created); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &created, nil
}

func (a *BackendCatalogAdapter) UpdateProduct(ctx context.Context, productID string, product domain.Product) (*domain.Product, error) {
	var updated domain.Product
	if err := a.client.PutJSON(ctx, "/products/"+url.PathEscape(productID), product, &updated); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	return &updated, nil
}

func (a *BackendCatalogAdapter) DeleteProduct(ctx context.Context, productID string) error {
	if err := a.client.DeleteJSON(ctx, "/products/"+url.PathEscape(productID), nil); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	return nil
}

func (a *BackendCatalogAdapter) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := a.client.GetJSON(ctx, "/brands", &brands); err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

func (a *BackendCatalogAdapter) CreateBrand(ctx context.Context, brand domain.Brand) (*domain.Brand, error) {
	var created domain.Brand
	if err := a.client.PostJSON(ctx, "/brands", brand, &created); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &created, nil
}

func (a *BackendCatalogAdapter) DeleteBrand(ctx context.Context, brandID string) error {
	if err := a.client.DeleteJSON(ctx, "/brands/"+url.PathEscape(brandID), nil); err != nil {
		return fmt.Errorf("failed to delete brand %s: %w", brandID, err)
	}
	return nil
}

func (a *BackendCatalogAdapter) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := a.client.GetJSON(ctx, "/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (a *BackendCatalogAdapter) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var created domain.Category
	if err := a.client.PostJSON(ctx, "/categories", category, &created); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &created, nil
}

func (a *BackendCatalogAdapter) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := a.client.DeleteJSON(ctx, "/categories/"+url.PathEscape(categoryID), nil); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}
