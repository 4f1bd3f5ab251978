package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shoedash-gateway/internal/features/inventory/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	levels  []domain.StockLevel
	imports []domain.PurchaseImport
	reports []domain.DamageReport
}

func (f *fakeProvider) StockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	return f.levels, nil
}

func (f *fakeProvider) ListPurchaseImports(ctx context.Context) ([]domain.PurchaseImport, error) {
	return f.imports, nil
}

func (f *fakeProvider) CreatePurchaseImport(ctx context.Context, imp domain.PurchaseImport) (*domain.PurchaseImport, error) {
	imp.ID = "imp-1"
	f.imports = append(f.imports, imp)
	return &imp, nil
}

func (f *fakeProvider) ListDamageReports(ctx context.Context) ([]domain.DamageReport, error) {
	return f.reports, nil
}

func (f *fakeProvider) CreateDamageReport(ctx context.Context, report domain.DamageReport) (*domain.DamageReport, error) {
	report.ID = "dmg-1"
	f.reports = append(f.reports, report)
	return &report, nil
}

func newTestApp(provider *fakeProvider) *fiber.App {
	h := NewInventoryHandler(provider)

	app := fiber.New()
	app.Get("/inventory/stock", h.StockLevels)
	app.Get("/inventory/imports", h.ListPurchaseImports)
	app.Post("/inventory/imports", h.CreatePurchaseImport)
	app.Get("/inventory/damage-reports", h.ListDamageReports)
	app.Post("/inventory/damage-reports", h.CreateDamageReport)
	return app
}

func TestInventoryHandler_StockLevels(t *testing.T) {
	app := newTestApp(&fakeProvider{levels: []domain.StockLevel{
		{ProductID: "p-1", Size: "42", Quantity: 7, Reserved: 2},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/inventory/stock", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var levels []domain.StockLevel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&levels))
	require.Len(t, levels, 1)
	assert.Equal(t, 7, levels[0].Quantity)
}

func TestInventoryHandler_CreatePurchaseImport(t *testing.T) {
	provider := &fakeProvider{}
	app := newTestApp(provider)

	body := `{"supplierId": "s-1", "items": [{"productId": "p-1", "size": "42", "quantity": 10, "unitCost": 55}]}`
	req := httptest.NewRequest(http.MethodPost, "/inventory/imports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, provider.imports, 1)
	assert.Equal(t, "s-1", provider.imports[0].SupplierID)
}

func TestInventoryHandler_CreatePurchaseImportValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "NoItems", body: `{"supplierId": "s-1", "items": []}`},
		{name: "NonPositiveQuantity", body: `{"supplierId": "s-1", "items": [{"productId": "p-1", "quantity": 0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			app := newTestApp(provider)

			req := httptest.NewRequest(http.MethodPost, "/inventory/imports", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, provider.imports)
		})
	}
}

func TestInventoryHandler_CreateDamageReport(t *testing.T) {
	provider := &fakeProvider{}
	app := newTestApp(provider)

	body := `{"productId": "p-1", "size": "42", "quantity": 1, "reason": "water damage"}`
	req := httptest.NewRequest(http.MethodPost, "/inventory/damage-reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, provider.reports, 1)
	assert.Equal(t, "water damage", provider.reports[0].Reason)
}
