package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_GetJSON verifies envelope unwrapping into the output value.
func TestClient_GetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/42", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "ok", "data": {"id": "42", "statusId": "PENDING"}}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 2*time.Second, http.DefaultTransport)

	var out struct {
		ID       string `json:"id"`
		StatusID string `json:"statusId"`
	}
	err := client.GetJSON(context.Background(), "/orders/42", &out)
	require.NoError(t, err)
	assert.Equal(t, "42", out.ID)
	assert.Equal(t, "PENDING", out.StatusID)
}

// TestClient_PostJSON verifies the request body and content type.
func TestClient_PostJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"toStatusId":"ACCEPTED"}`, string(body))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "updated", "data": null}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 2*time.Second, http.DefaultTransport)

	body := map[string]string{"toStatusId": "ACCEPTED"}
	err := client.PostJSON(context.Background(), "/orders/42/status", body, nil)
	require.NoError(t, err)
}

// TestClient_ServerError verifies that non-2xx responses surface the
// envelope message as a ServerError.
func TestClient_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "transition rejected: order already packed", "data": null}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 2*time.Second, http.DefaultTransport)

	err := client.PostJSON(context.Background(), "/orders/42/status", map[string]string{"toStatusId": "PACKED"}, nil)
	require.Error(t, err)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusConflict, serverErr.StatusCode)
	assert.Equal(t, "transition rejected: order already packed", serverErr.Message)
}

// TestClient_ServerError_NoEnvelope verifies the status text fallback when
// the error body is not an envelope.
func TestClient_ServerError_NoEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 2*time.Second, http.DefaultTransport)

	err := client.GetJSON(context.Background(), "/orders", nil)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
	assert.Equal(t, "Bad Gateway", serverErr.Message)
}

// expiredTransport simulates the auth transport giving up on a session.
type expiredTransport struct{}

func (expiredTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, ErrSessionExpired
}

// TestClient_SessionExpired verifies the sentinel survives the http.Client
// error wrapping.
func TestClient_SessionExpired(t *testing.T) {
	client := NewClient("http://backend.test", 2*time.Second, expiredTransport{})

	err := client.GetJSON(context.Background(), "/orders", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

// TestClient_EmptyData verifies that a null data payload leaves the output
// value untouched.
func TestClient_EmptyData(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "nothing here", "data": null}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 2*time.Second, http.DefaultTransport)

	out := map[string]string{"keep": "me"}
	err := client.GetJSON(context.Background(), "/empty", &out)
	require.NoError(t, err)
	assert.Equal(t, "me", out["keep"])
}
