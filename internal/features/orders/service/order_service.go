package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/orders/domain"
	"shoedash-gateway/internal/features/orders/ports"

	"go.uber.org/zap"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderService guards status mutations with the transition graph and proxies
// order reads to the backend. The embedded reference graph is used until the
// first successful sync; after that the backend configuration is
// authoritative.
type OrderService struct {
	// provider is the interface for the backend's order endpoints.
	provider ports.OrderProvider

	mu    sync.RWMutex
	graph *domain.TransitionGraph
}

// NewOrderService creates a new OrderService seeded with the reference graph.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{
		provider: provider,
		graph:    domain.ReferenceGraph(),
	}
}

// Graph returns the current transition graph.
func (s *OrderService) Graph() *domain.TransitionGraph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// SyncGraph replaces the local graph with the backend's configuration.
// Called at startup and on a cron schedule; a failure keeps the previous
// graph in place.
func (s *OrderService) SyncGraph(ctx context.Context) error {
	statuses, err := s.provider.Statuses(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync statuses: %w", err)
	}
	groups, err := s.provider.TransitionGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync transitions: %w", err)
	}

	graph, err := domain.NewTransitionGraphFromGroups(statuses, groups)
	if err != nil {
		return fmt.Errorf("backend transition configuration invalid: %w", err)
	}

	s.mu.Lock()
	s.graph = graph
	s.mu.Unlock()

	logger.Get().Info("Transition graph synced",
		zap.Int("statuses", len(statuses)),
		zap.Int("groups", len(groups)),
	)
	return nil
}

// ListOrders retrieves orders, optionally filtered by status.
func (s *OrderService) ListOrders(ctx context.Context, status domain.StatusID) ([]domain.Order, error) {
	return s.provider.ListOrders(ctx, status)
}

// GetOrder retrieves a single order.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.provider.GetOrder(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return order, nil
}

// StatusLogs retrieves the status audit trail of an order.
func (s *OrderService) StatusLogs(ctx context.Context, orderID string) ([]domain.OrderStatusUpdateLog, error) {
	logs, err := s.provider.StatusLogs(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return logs, nil
}

// ApplyTransition moves an order to a new status. The move is validated
// against the local graph first: an illegal transition is rejected without
// any backend call and without touching order state. The backend remains the
// final authority; its rejection of a locally-legal move is surfaced to the
// caller as-is.
func (s *OrderService) ApplyTransition(ctx context.Context, orderID string, to domain.StatusID) (*domain.Order, error) {
	order, err := s.provider.GetOrder(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	graph := s.Graph()
	if _, err := graph.Apply(*order, to); err != nil {
		return nil, err
	}

	updated, err := s.provider.UpdateStatus(ctx, orderID, to)
	if err != nil {
		return nil, err
	}

	// The server recomputes the available transitions; when they disagree
	// with the local graph the local configuration is stale.
	for _, edge := range updated.AvailableTransitions {
		if !graph.IsLegalTransition(updated.StatusID, edge.To) {
			logger.Get().Warn("Local transition graph is stale",
				zap.String("order_id", orderID),
				zap.String("from", string(updated.StatusID)),
				zap.String("to", string(edge.To)),
			)
			break
		}
	}

	return updated, nil
}

// Statuses returns the current status configuration in display order.
func (s *OrderService) Statuses() []domain.OrderStatus {
	return s.Graph().Statuses()
}

// TransitionGroups returns the current transition configuration.
func (s *OrderService) TransitionGroups() []domain.TransitionGroup {
	return s.Graph().Groups()
}

// CreateTransition adds an edge server-side and re-syncs the local graph.
func (s *OrderService) CreateTransition(ctx context.Context, edge domain.TransitionEdge) error {
	if err := s.provider.CreateTransition(ctx, edge); err != nil {
		return err
	}
	return s.SyncGraph(ctx)
}

// DeleteTransition removes an edge server-side and re-syncs the local graph.
func (s *OrderService) DeleteTransition(ctx context.Context, from, to domain.StatusID) error {
	if err := s.provider.DeleteTransition(ctx, from, to); err != nil {
		return err
	}
	return s.SyncGraph(ctx)
}

// mapNotFound converts a backend 404 into the service-level sentinel.
func mapNotFound(err error) error {
	var serverErr *backend.ServerError
	if errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusNotFound {
		return ErrOrderNotFound
	}
	return err
}
