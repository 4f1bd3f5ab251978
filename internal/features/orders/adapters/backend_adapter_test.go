package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *BackendOrderAdapter {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewBackendOrderAdapter(backend.NewClient(ts.URL, 2*time.Second, http.DefaultTransport))
}

// TestGetOrder verifies envelope decoding into the domain order.
func TestGetOrder(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/o-42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "ok",
			"data": {
				"id": "o-42",
				"code": "SD-1042",
				"statusId": "PENDING",
				"customerName": "Maria Lopez",
				"total": 129.90,
				"availableTransitions": [
					{"fromStatusId": "PENDING", "toStatusId": "ACCEPTED", "label": "Accept order", "isScanningRequired": false}
				],
				"items": [
					{"productId": "p-7", "name": "Journey Camo", "size": "42", "quantity": 1, "price": 129.90}
				]
			}
		}`))
	})

	order, err := adapter.GetOrder(context.Background(), "o-42")
	require.NoError(t, err)

	assert.Equal(t, "o-42", order.ID)
	assert.Equal(t, "SD-1042", order.Code)
	assert.Equal(t, domain.StatusPending, order.StatusID)
	assert.Equal(t, "Maria Lopez", order.CustomerName)
	require.Len(t, order.AvailableTransitions, 1)
	assert.Equal(t, domain.StatusAccepted, order.AvailableTransitions[0].To)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "42", order.Items[0].Size)
}

// TestListOrders_StatusFilter verifies the status query parameter.
func TestListOrders_StatusFilter(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "PENDING", r.URL.Query().Get("statusId"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "ok", "data": [{"id": "o-1", "statusId": "PENDING"}]}`))
	})

	orders, err := adapter.ListOrders(context.Background(), domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o-1", orders[0].ID)
}

// TestUpdateStatus verifies the mutation body and response decoding.
func TestUpdateStatus(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/o-1/status", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"toStatusId": "ACCEPTED"}`, string(body))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "updated", "data": {"id": "o-1", "statusId": "ACCEPTED"}}`))
	})

	order, err := adapter.UpdateStatus(context.Background(), "o-1", domain.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, order.StatusID)
}

// TestTransitionGroups verifies the grouped configuration decoding.
func TestTransitionGroups(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order-statuses/transitions", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "ok",
			"data": [
				{"fromStatusId": "PENDING", "transitions": [
					{"fromStatusId": "PENDING", "toStatusId": "ACCEPTED", "label": "Accept order"},
					{"fromStatusId": "PENDING", "toStatusId": "CANCELLED", "label": "Cancel order"}
				]},
				{"fromStatusId": "CANCELLED", "transitions": []}
			]
		}`))
	})

	groups, err := adapter.TransitionGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, domain.StatusPending, groups[0].FromStatusID)
	require.Len(t, groups[0].Transitions, 2)
	assert.Empty(t, groups[1].Transitions)
}

// TestDeleteTransition verifies the path encoding of both statuses.
func TestDeleteTransition(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/order-statuses/transitions/PENDING/CANCELLED", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "deleted", "data": null}`))
	})

	err := adapter.DeleteTransition(context.Background(), domain.StatusPending, domain.StatusCancelled)
	require.NoError(t, err)
}

// TestGetOrder_ServerError verifies backend errors carry status and message.
func TestGetOrder_ServerError(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "order does not exist", "data": null}`))
	})

	_, err := adapter.GetOrder(context.Background(), "missing")
	require.Error(t, err)

	var serverErr *backend.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusNotFound, serverErr.StatusCode)
	assert.Equal(t, "order does not exist", serverErr.Message)
}
