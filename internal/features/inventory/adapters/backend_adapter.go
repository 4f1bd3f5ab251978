package adapters

import (
	"context"
	"fmt"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/inventory/domain"
)

// BackendInventoryAdapter implements the InventoryProvider interface against
// the commerce backend's REST API through the authenticated pipeline.
type BackendInventoryAdapter struct {
	client *backend.Client
}

// NewBackendInventoryAdapter creates a new BackendInventoryAdapter.
func NewBackendInventoryAdapter(client *backend.Client) *BackendInventoryAdapter {
	return &BackendInventoryAdapter{client: client}
}

func (a *BackendInventoryAdapter) StockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	var levels []domain.StockLevel
	if err := a.client.GetJSON(ctx, "/inventory/stock", &levels); err != nil {
		return nil, fmt.Errorf("failed to get stock levels: %w", err)
	}
	return levels, nil
}

func (a *BackendInventoryAdapter) ListPurchaseImports(ctx context.Context) ([]domain.PurchaseImport, error) {
	var imports []domain.PurchaseImport
	if err := a.client.GetJSON(ctx, "/inventory/imports", &imports); err != nil {
		return nil, fmt.Errorf("failed to list purchase imports: %w", err)
	}
	return imports, nil
}

func (a *BackendInventoryAdapter) CreatePurchaseImport(ctx context.Context, imp domain.PurchaseImport) (*domain.PurchaseImport, error) {
	var created domain.PurchaseImport
	if err := a.client.PostJSON(ctx, "/inventory/imports", imp, &created); err != nil {
		return nil, fmt.Errorf("failed to create purchase import: %w", err)
	}
	return &created, nil
}

func (a *BackendInventoryAdapter) ListDamageReports(ctx context.Context) ([]domain.DamageReport, error) {
	var reports []domain.DamageReport
	if err := a.client.GetJSON(ctx, "/inventory/damage-reports", &reports); err != nil {
		return nil, fmt.Errorf("failed to list damage reports: %w", err)
	}
	return reports, nil
}

func (a *BackendInventoryAdapter) CreateDamageReport(ctx context.Context, report domain.DamageReport) (*domain.DamageReport, error) {
	var created domain.DamageReport
	if err := a.client.PostJSON(ctx, "/inventory/damage-reports", report, &created); err != nil {
		return nil, fmt.Errorf("failed to create damage report: %w", err)
	}
	return &created, nil
}
