package ports

import (
	"context"

	"shoedash-gateway/internal/features/customers/domain"
)

// CustomerProvider proxies the backend's customer and chat resources through
// the authenticated pipeline.
type CustomerProvider interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	ListMessages(ctx context.Context, customerID string) ([]domain.ChatMessage, error)
	SendMessage(ctx context.Context, message domain.ChatMessage) (*domain.ChatMessage, error)
}
