package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client issues JSON requests against the commerce backend through the
// authenticated transport and unwraps the uniform {message, data} envelope.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client. The transport is expected to be an
// AuthTransport (possibly layered over the logging transport).
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// envelope is the uniform response shape of every backend endpoint.
type envelope struct {
	// Message is a human-readable result or error description.
	Message string `json:"message"`
	// Data is the endpoint-specific payload.
	Data json.RawMessage `json:"data"`
}

// GetJSON issues a GET and decodes the envelope data into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the envelope data into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// PutJSON issues a PUT with a JSON body and decodes the envelope data into out.
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// DeleteJSON issues a DELETE and decodes the envelope data into out.
func (c *Client) DeleteJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return ErrSessionExpired
		}
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := http.StatusText(resp.StatusCode)
		var env envelope
		if dec.Decode(&env) == nil && env.Message != "" {
			msg = env.Message
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := dec.Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
