package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shoedash-gateway/internal/core/httpclient"
	"shoedash-gateway/internal/features/auth/domain"
)

// BackendAuthProvider implements the AuthProvider interface against the
// commerce backend's auth endpoints. It uses a plain client on purpose:
// the sign-in and refresh calls must never pass through the authenticated
// pipeline, or a failing refresh could trigger itself.
type BackendAuthProvider struct {
	// client is the plain HTTP client used for auth calls.
	client *http.Client
	// baseURL is the backend base URL.
	baseURL string
}

// NewBackendAuthProvider creates a new BackendAuthProvider.
func NewBackendAuthProvider(baseURL string, timeout time.Duration) *BackendAuthProvider {
	return &BackendAuthProvider{
		client:  httpclient.NewClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// signInRequest is the wire shape of the staff sign-in call.
type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signInData is the envelope payload of a successful sign-in.
type signInData struct {
	User         domain.StaffUser `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

// refreshRequest is the wire shape of the refresh call.
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshData is the envelope payload of a successful refresh.
type refreshData struct {
	AccessToken string `json:"accessToken"`
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// SignIn exchanges staff credentials for a user profile and token pair.
func (p *BackendAuthProvider) SignIn(ctx context.Context, username, password string) (*domain.StaffUser, domain.Credentials, error) {
	var data signInData
	status, err := p.post(ctx, "/auth/staff-sign-in", signInRequest{Username: username, Password: password}, &data)
	if err != nil {
		return nil, domain.Credentials{}, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, domain.Credentials{}, domain.ErrInvalidCredentials
	}
	if status != http.StatusOK {
		return nil, domain.Credentials{}, fmt.Errorf("sign-in failed with status %d", status)
	}
	if data.AccessToken == "" || data.RefreshToken == "" {
		return nil, domain.Credentials{}, fmt.Errorf("sign-in response missing tokens")
	}

	return &data.User, domain.Credentials{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a new access token. No retry
// wrapping: a failure here means the session is over.
func (p *BackendAuthProvider) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var data refreshData
	status, err := p.post(ctx, "/auth/refresh-token", refreshRequest{RefreshToken: refreshToken}, &data)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("refresh failed with status %d", status)
	}
	if data.AccessToken == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	return data.AccessToken, nil
}

// post issues a JSON POST and decodes the envelope data on 2xx responses.
// The HTTP status is returned for the caller to interpret.
func (p *BackendAuthProvider) post(ctx context.Context, path string, body, out interface{}) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode payload: %w", err)
		}
	}
	return resp.StatusCode, nil
}
