package backend

import "context"

// TokenStore owns the persisted credential pair for the staff session.
// The transport re-reads tokens on every request instead of caching them,
// since a concurrent refresh may have rotated the access token.
type TokenStore interface {
	// AccessToken returns the current access token, or "" when signed out.
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the current refresh token, or "" when signed out.
	RefreshToken(ctx context.Context) (string, error)

	// SaveRefreshed atomically replaces the access token after a successful
	// refresh. The store applies its configured refresh TTL policy.
	SaveRefreshed(ctx context.Context, accessToken string) error

	// Clear removes the credential pair.
	Clear(ctx context.Context) error
}

// Refresher exchanges a refresh token for a new access token.
// Implementations must not route through the authenticated transport;
// the refresh call supplies its own authorization and must never trigger
// another refresh.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
