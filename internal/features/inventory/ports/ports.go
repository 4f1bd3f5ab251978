package ports

import (
	"context"

	"shoedash-gateway/internal/features/inventory/domain"
)

// InventoryProvider proxies the backend's stock resources through the
// authenticated pipeline.
type InventoryProvider interface {
	StockLevels(ctx context.Context) ([]domain.StockLevel, error)
	ListPurchaseImports(ctx context.Context) ([]domain.PurchaseImport, error)
	CreatePurchaseImport(ctx context.Context, imp domain.PurchaseImport) (*domain.PurchaseImport, error)
	ListDamageReports(ctx context.Context) ([]domain.DamageReport, error)
	CreateDamageReport(ctx context.Context, report domain.DamageReport) (*domain.DamageReport, error)
}
