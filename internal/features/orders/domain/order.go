package domain

import "time"

// Order is the dashboard view of a backend order. It carries exactly one
// current status plus the transitions the backend considers available; the
// backend recomputes both on every mutation.
type Order struct {
	// ID is the unique order identifier.
	ID string `json:"id"`
	// Code is the short human-readable order number.
	Code string `json:"code"`
	// StatusID is the current lifecycle status.
	StatusID StatusID `json:"statusId"`
	// AvailableTransitions are the legal next moves as computed server-side.
	AvailableTransitions []TransitionEdge `json:"availableTransitions"`
	// CustomerName is the buyer's display name.
	CustomerName string `json:"customerName"`
	// Phone is the buyer's contact number.
	Phone string `json:"phone"`
	// Address is the delivery address.
	Address string `json:"address"`
	// Total is the order total in the shop currency.
	Total float64 `json:"total"`
	// CreatedAt is when the order was placed.
	CreatedAt time.Time `json:"createdAt"`
	// Items are the ordered products.
	Items []OrderItem `json:"items"`
}

// OrderItem is a single product line within an order.
type OrderItem struct {
	// ProductID identifies the catalog product.
	ProductID string `json:"productId"`
	// Name is the product name at order time.
	Name string `json:"name"`
	// Size is the shoe size ordered.
	Size string `json:"size"`
	// Quantity is the number of pairs.
	Quantity int `json:"quantity"`
	// Price is the unit price at order time.
	Price float64 `json:"price"`
}

// OrderStatusUpdateLog is one immutable audit record of a status change.
// Logs are append-only; the backend never edits or removes them.
type OrderStatusUpdateLog struct {
	// OrderID is the order that changed.
	OrderID string `json:"orderId"`
	// StatusID is the status the order entered.
	StatusID StatusID `json:"statusId"`
	// UpdatedAt is when the change happened.
	UpdatedAt time.Time `json:"updatedAt"`
	// UpdatedBy is the staff account that applied the change.
	UpdatedBy string `json:"updatedBy"`
}
