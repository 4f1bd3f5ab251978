package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"shoedash-gateway/internal/core/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AuthTransport is an http.RoundTripper that attaches the staff bearer token
// to outgoing requests and recovers from expired-credential failures.
//
// On a 401 it performs a single-flight token refresh (concurrent 401s for the
// same refresh token coalesce into one refresh call and share its result) and
// replays the original request exactly once with the new token. A request that
// still gets 401 after the replay is returned as-is; the pipeline never loops.
type AuthTransport struct {
	// Base is the underlying RoundTripper to execute requests.
	Base http.RoundTripper
	// Tokens is the credential pair store.
	Tokens TokenStore
	// Refresher performs the refresh-token exchange.
	Refresher Refresher
	// OnSessionExpired is invoked once per failed refresh, after the
	// credential pair has been cleared. May be nil.
	OnSessionExpired func()

	group singleflight.Group
}

// NewAuthTransport creates an AuthTransport over the given base transport.
func NewAuthTransport(base http.RoundTripper, tokens TokenStore, refresher Refresher, onExpired func()) *AuthTransport {
	return &AuthTransport{
		Base:             base,
		Tokens:           tokens,
		Refresher:        refresher,
		OnSessionExpired: onExpired,
	}
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// An explicit Authorization header wins. The refresh call relies on this
	// to supply its own credentials without triggering another refresh.
	if req.Header.Get("Authorization") != "" {
		return t.base().RoundTrip(req)
	}

	ctx := req.Context()

	access, err := t.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read access token: %w", err)
	}

	attempt := req.Clone(ctx)
	if access != "" {
		attempt.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := t.base().RoundTrip(attempt)
	if err != nil {
		// Transport failures propagate untouched; retrying is the caller's call.
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	refreshToken, err := t.Tokens.RefreshToken(ctx)
	if err != nil {
		drain(resp)
		return nil, fmt.Errorf("failed to read refresh token: %w", err)
	}
	if refreshToken == "" {
		drain(resp)
		t.expire()
		return nil, ErrSessionExpired
	}

	retry := req.Clone(ctx)
	if req.Body != nil {
		if req.GetBody == nil {
			// Body already consumed and not replayable; surface the 401.
			return resp, nil
		}
		body, err := req.GetBody()
		if err != nil {
			drain(resp)
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		retry.Body = body
	}
	drain(resp)

	token, err, shared := t.group.Do(refreshToken, func() (interface{}, error) {
		return t.refresh(req, refreshToken)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Named("backend").Debug("Reused in-flight token refresh",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
		)
	}

	// Exactly one replay per original request.
	retry.Header.Set("Authorization", "Bearer "+token.(string))
	return t.base().RoundTrip(retry)
}

// refresh runs inside the single-flight group; at most one execution per
// refresh token is in flight at a time.
func (t *AuthTransport) refresh(req *http.Request, refreshToken string) (interface{}, error) {
	log := logger.Named("backend")

	log.Info("Access token rejected, refreshing",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	token, err := t.Refresher.Refresh(req.Context(), refreshToken)
	if err != nil || token == "" {
		if err != nil {
			log.Warn("Token refresh failed", zap.Error(err))
		} else {
			log.Warn("Token refresh returned no access token")
		}
		t.expire()
		return nil, ErrSessionExpired
	}

	if err := t.Tokens.SaveRefreshed(req.Context(), token); err != nil {
		// The in-memory fallback keeps the session alive; the next 401
		// simply triggers another refresh.
		log.Warn("Failed to persist refreshed access token", zap.Error(err))
	}

	return token, nil
}

// expire clears the credential pair and notifies the session-expired hook.
// Uses a background context so cleanup survives request cancellation.
func (t *AuthTransport) expire() {
	if err := t.Tokens.Clear(context.Background()); err != nil {
		logger.Named("backend").Warn("Failed to clear credentials", zap.Error(err))
	}
	if t.OnSessionExpired != nil {
		t.OnSessionExpired()
	}
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
