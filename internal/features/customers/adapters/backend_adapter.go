package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/customers/domain"
)

// BackendCustomerAdapter implements the CustomerProvider interface against
// the commerce backend's REST API through the authenticated pipeline.
type BackendCustomerAdapter struct {
	client *backend.Client
}

// NewBackendCustomerAdapter creates a new BackendCustomerAdapter.
func NewBackendCustomerAdapter(client *backend.Client) *BackendCustomerAdapter {
	return &BackendCustomerAdapter{client: client}
}

func (a *BackendCustomerAdapter) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := a.client.GetJSON(ctx, "/customers", &customers); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (a *BackendCustomerAdapter) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := a.client.GetJSON(ctx, "/customers/"+url.PathEscape(customerID), &customer); err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return &customer, nil
}

func (a *BackendCustomerAdapter) ListMessages(ctx context.Context, customerID string) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	path := "/customers/" + url.PathEscape(customerID) + "/messages"
	if err := a.client.GetJSON(ctx, path, &messages); err != nil {
		return nil, fmt.Errorf("failed to list messages of customer %s: %w", customerID, err)
	}
	return messages, nil
}

func (a *BackendCustomerAdapter) SendMessage(ctx context.Context, message domain.ChatMessage) (*domain.ChatMessage, error) {
	var sent domain.ChatMessage
	path := "/customers/" + url.PathEscape(message.CustomerID) + "/messages"
	if err := a.client.PostJSON(ctx, path, message, &sent); err != nil {
		return nil, fmt.Errorf("failed to send message to customer %s: %w", message.CustomerID, err)
	}
	return &sent, nil
}
