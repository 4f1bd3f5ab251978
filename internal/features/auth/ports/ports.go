package ports

import (
	"context"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/auth/domain"
)

// AuthProvider talks to the backend's auth endpoints. Implementations must
// use a plain transport: neither call may pass through the authenticated
// pipeline, or a failing refresh could trigger itself.
type AuthProvider interface {
	// SignIn exchanges staff credentials for a user profile and token pair.
	SignIn(ctx context.Context, username, password string) (*domain.StaffUser, domain.Credentials, error)

	// Refresh exchanges a refresh token for a new access token.
	// Satisfies the pipeline's Refresher port.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// SessionStore persists the credential pair. It extends the pipeline's
// TokenStore with the sign-in write, which uses a different TTL policy than
// the refresh write.
type SessionStore interface {
	backend.TokenStore

	// SaveSignIn persists a fresh pair obtained via sign-in.
	SaveSignIn(ctx context.Context, creds domain.Credentials) error
}
