package ports

import (
	"context"

	"shoedash-gateway/internal/features/orders/domain"
)

// OrderProvider defines the interface for the backend's order endpoints.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// ListOrders retrieves orders, optionally filtered by status.
	ListOrders(ctx context.Context, status domain.StatusID) ([]domain.Order, error)

	// GetOrder retrieves an order by its identifier.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// UpdateStatus asks the backend to move an order to a new status and
	// returns the updated order. The backend is the final authority and may
	// reject a move the client believed legal.
	UpdateStatus(ctx context.Context, orderID string, to domain.StatusID) (*domain.Order, error)

	// StatusLogs retrieves the append-only status audit trail of an order.
	StatusLogs(ctx context.Context, orderID string) ([]domain.OrderStatusUpdateLog, error)

	// Statuses retrieves the authoritative status configuration.
	Statuses(ctx context.Context) ([]domain.OrderStatus, error)

	// TransitionGroups retrieves the authoritative transition configuration.
	TransitionGroups(ctx context.Context) ([]domain.TransitionGroup, error)

	// CreateTransition adds an edge to the backend configuration.
	CreateTransition(ctx context.Context, edge domain.TransitionEdge) error

	// DeleteTransition removes an edge from the backend configuration.
	DeleteTransition(ctx context.Context, from, to domain.StatusID) error
}
