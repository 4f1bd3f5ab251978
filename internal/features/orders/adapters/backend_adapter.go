package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/orders/domain"
)

// BackendOrderAdapter implements the OrderProvider interface against the
// commerce backend's REST API through the authenticated pipeline.
type BackendOrderAdapter struct {
	client *backend.Client
}

// NewBackendOrderAdapter creates a new BackendOrderAdapter.
func NewBackendOrderAdapter(client *backend.Client) *BackendOrderAdapter {
	return &BackendOrderAdapter{client: client}
}

// ListOrders fetches orders, optionally filtered by status.
func (a *BackendOrderAdapter) ListOrders(ctx context.Context, status domain.StatusID) ([]domain.Order, error) {
	path := "/orders"
	if status != "" {
		path += "?statusId=" + url.QueryEscape(string(status))
	}

	var orders []domain.Order
	if err := a.client.GetJSON(ctx, path, &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder fetches a single order.
func (a *BackendOrderAdapter) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := a.client.GetJSON(ctx, "/orders/"+url.PathEscape(orderID), &order); err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// updateStatusRequest is the wire shape of a status mutation.
type updateStatusRequest struct {
	ToStatusID domain.StatusID `json:"toStatusId"`
}

// UpdateStatus moves an order to a new status server-side.
func (a *BackendOrderAdapter) UpdateStatus(ctx context.Context, orderID string, to domain.StatusID) (*domain.Order, error) {
	var order domain.Order
	body := updateStatusRequest{ToStatusID: to}
	if err := a.client.PostJSON(ctx, "/orders/"+url.PathEscape(orderID)+"/status", body, &order); err != nil {
		return nil, fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	return &order, nil
}

// StatusLogs fetches the status audit trail of an order.
func (a *BackendOrderAdapter) StatusLogs(ctx context.Context, orderID string) ([]domain.OrderStatusUpdateLog, error) {
	var logs []domain.OrderStatusUpdateLog
	if err := a.client.GetJSON(ctx, "/orders/"+url.PathEscape(orderID)+"/logs", &logs); err != nil {
		return nil, fmt.Errorf("failed to get status logs of order %s: %w", orderID, err)
	}
	return logs, nil
}

// Statuses fetches the authoritative status configuration.
func (a *BackendOrderAdapter) Statuses(ctx context.Context) ([]domain.OrderStatus, error) {
	var statuses []domain.OrderStatus
	if err := a.client.GetJSON(ctx, "/order-statuses", &statuses); err != nil {
		return nil, fmt.Errorf("failed to get order statuses: %w", err)
	}
	return statuses, nil
}

// TransitionGroups fetches the authoritative transition configuration.
func (a *BackendOrderAdapter) TransitionGroups(ctx context.Context) ([]domain.TransitionGroup, error) {
	var groups []domain.TransitionGroup
	if err := a.client.GetJSON(ctx, "/order-statuses/transitions", &groups); err != nil {
		return nil, fmt.Errorf("failed to get transitions: %w", err)
	}
	return groups, nil
}

// CreateTransition adds an edge to the backend configuration.
func (a *BackendOrderAdapter) CreateTransition(ctx context.Context, edge domain.TransitionEdge) error {
	if err := a.client.PostJSON(ctx, "/order-statuses/transitions", edge, nil); err != nil {
		return fmt.Errorf("failed to create transition: %w", err)
	}
	return nil
}

// DeleteTransition removes an edge from the backend configuration.
func (a *BackendOrderAdapter) DeleteTransition(ctx context.Context, from, to domain.StatusID) error {
	path := fmt.Sprintf("/order-statuses/transitions/%s/%s", url.PathEscape(string(from)), url.PathEscape(string(to)))
	if err := a.client.DeleteJSON(ctx, path, nil); err != nil {
		return fmt.Errorf("failed to delete transition: %w", err)
	}
	return nil
}
