package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/customers/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	customers []domain.Customer
	messages  []domain.ChatMessage
	sent      []domain.ChatMessage
}

func (f *fakeProvider) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return f.customers, nil
}

func (f *fakeProvider) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == customerID {
			return &f.customers[i], nil
		}
	}
	return nil, &backend.ServerError{StatusCode: http.StatusNotFound, Message: "Customer not found"}
}

func (f *fakeProvider) ListMessages(ctx context.Context, customerID string) ([]domain.ChatMessage, error) {
	return f.messages, nil
}

func (f *fakeProvider) SendMessage(ctx context.Context, message domain.ChatMessage) (*domain.ChatMessage, error) {
	message.ID = "m-1"
	message.SentAt = time.Now()
	f.sent = append(f.sent, message)
	return &message, nil
}

func newTestApp(provider *fakeProvider) *fiber.App {
	h := NewCustomerHandler(provider)

	app := fiber.New()
	app.Get("/customers", h.ListCustomers)
	app.Get("/customers/:id", h.GetCustomer)
	app.Get("/customers/:id/messages", h.ListMessages)
	app.Post("/customers/:id/messages", h.SendMessage)
	return app
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	app := newTestApp(&fakeProvider{customers: []domain.Customer{
		{ID: "cu-1", FullName: "Ada Lovelace", OrderCount: 3},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/customers", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var customers []domain.Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Ada Lovelace", customers[0].FullName)
}

func TestCustomerHandler_GetCustomerNotFound(t *testing.T) {
	app := newTestApp(&fakeProvider{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/customers/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomerHandler_SendMessage(t *testing.T) {
	provider := &fakeProvider{}
	app := newTestApp(provider)

	req := httptest.NewRequest(http.MethodPost, "/customers/cu-1/messages",
		strings.NewReader(`{"body": "Your order shipped today"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, provider.sent, 1)
	sent := provider.sent[0]
	assert.Equal(t, "cu-1", sent.CustomerID)
	assert.True(t, sent.FromStaff)
	assert.Equal(t, "Your order shipped today", sent.Body)

	_, err = uuid.Parse(sent.ClientMessageID)
	assert.NoError(t, err, "client message id should be a valid uuid")
}

func TestCustomerHandler_SendMessageUniqueClientIDs(t *testing.T) {
	provider := &fakeProvider{}
	app := newTestApp(provider)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/customers/cu-1/messages",
			strings.NewReader(`{"body": "hello"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Len(t, provider.sent, 2)
	assert.NotEqual(t, provider.sent[0].ClientMessageID, provider.sent[1].ClientMessageID)
}

func TestCustomerHandler_SendMessageEmptyBody(t *testing.T) {
	provider := &fakeProvider{}
	app := newTestApp(provider)

	req := httptest.NewRequest(http.MethodPost, "/customers/cu-1/messages", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, provider.sent)
}
