package domain

import "time"

// StockLevel is the current quantity of one product size in the warehouse.
type StockLevel struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	// Reserved counts units held by pending orders.
	Reserved int `json:"reserved"`
}

// PurchaseImport is a stock intake from a supplier.
type PurchaseImport struct {
	ID         string               `json:"id"`
	SupplierID string               `json:"supplierId"`
	Items      []PurchaseImportItem `json:"items"`
	CreatedAt  time.Time            `json:"createdAt"`
	CreatedBy  string               `json:"createdBy"`
}

// PurchaseImportItem is one line of a purchase import.
type PurchaseImportItem struct {
	ProductID string  `json:"productId"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unitCost"`
}

// DamageReport records stock written off as damaged.
type DamageReport struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
