package domain

// StatusID identifies an order lifecycle status.
type StatusID string

const (
	StatusPending        StatusID = "PENDING"
	StatusAccepted       StatusID = "ACCEPTED"
	StatusPacked         StatusID = "PACKED"
	StatusShipped        StatusID = "SHIPPED"
	StatusDelivered      StatusID = "DELIVERED"
	StatusDeliveryFailed StatusID = "DELIVERY_FAILED"
	StatusCancelled      StatusID = "CANCELLED"
	StatusReturned       StatusID = "RETURNED"
)

// OrderStatus describes one lifecycle state of an order. The effect flags
// mirror what the backend does when an order enters the status; the gateway
// only displays them. Reference data, read-only at runtime.
type OrderStatus struct {
	// ID is the status identifier.
	ID StatusID `json:"id"`
	// Name is the staff-facing display name.
	Name string `json:"name"`
	// Description explains the status to staff.
	Description string `json:"description"`
	// Color is the dashboard badge color.
	Color string `json:"color"`

	// ReservesStock marks stock as reserved when entering this status.
	ReservesStock bool `json:"reservesStock"`
	// ReleasesStock releases previously reserved stock.
	ReleasesStock bool `json:"releasesStock"`
	// ReducesStock permanently reduces stock levels.
	ReducesStock bool `json:"reducesStock"`
	// IncreasesStock adds stock back (e.g., returns).
	IncreasesStock bool `json:"increasesStock"`
	// MarksDelivered stamps the order's delivery date.
	MarksDelivered bool `json:"marksDelivered"`
	// MarksRefunded stamps the order's refund date.
	MarksRefunded bool `json:"marksRefunded"`
	// SendsNotification notifies the customer on entry.
	SendsNotification bool `json:"sendsNotification"`

	// IsDefault marks the initial status of every new order.
	// Exactly one status carries it.
	IsDefault bool `json:"isDefault"`
}

// ReferenceStatuses returns the built-in status configuration, used until
// the backend's authoritative configuration is synced.
func ReferenceStatuses() []OrderStatus {
	return []OrderStatus{
		{
			ID: StatusPending, Name: "Pending", Color: "#f59e0b",
			Description:       "Order placed, awaiting staff review",
			ReservesStock:     true,
			SendsNotification: true,
			IsDefault:         true,
		},
		{
			ID: StatusAccepted, Name: "Accepted", Color: "#3b82f6",
			Description:       "Order confirmed by staff",
			SendsNotification: true,
		},
		{
			ID: StatusPacked, Name: "Packed", Color: "#8b5cf6",
			Description: "Items picked and boxed",
		},
		{
			ID: StatusShipped, Name: "Shipped", Color: "#06b6d4",
			Description:       "Handed to the courier",
			ReducesStock:      true,
			SendsNotification: true,
		},
		{
			ID: StatusDelivered, Name: "Delivered", Color: "#22c55e",
			Description:       "Received by the customer",
			MarksDelivered:    true,
			SendsNotification: true,
		},
		{
			ID: StatusDeliveryFailed, Name: "Delivery Failed", Color: "#ef4444",
			Description:       "Courier could not deliver",
			SendsNotification: true,
		},
		{
			ID: StatusCancelled, Name: "Cancelled", Color: "#6b7280",
			Description:       "Order cancelled before shipment",
			ReleasesStock:     true,
			SendsNotification: true,
		},
		{
			ID: StatusReturned, Name: "Returned", Color: "#f97316",
			Description:       "Items back in the warehouse",
			IncreasesStock:    true,
			MarksRefunded:     true,
			SendsNotification: true,
		},
	}
}
