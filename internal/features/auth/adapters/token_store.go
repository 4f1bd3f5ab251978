package adapters

import (
	"context"
	"time"

	"shoedash-gateway/internal/core/cache"
	"shoedash-gateway/internal/core/config"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	accessTokenKey  = "access_token_dash"
	refreshTokenKey = "refresh_token_dash"
)

// DualTokenStore persists the credential pair in Redis (primary) and an
// in-memory store (fallback), read with Redis precedence. The dual write
// keeps the session alive across gateway restarts while surviving a Redis
// outage within one process lifetime.
//
// TTLs follow the configured policy: the sign-in window for pairs obtained
// via sign-in, the shorter refresh window for rotated access tokens. When
// the access token is a JWT with an exp claim, the claim wins.
type DualTokenStore struct {
	cache  cache.Cache
	local  *gocache.Cache
	policy config.AuthConfig
}

// NewDualTokenStore creates a DualTokenStore with the given TTL policy.
func NewDualTokenStore(c cache.Cache, policy config.AuthConfig) *DualTokenStore {
	return &DualTokenStore{
		cache:  c,
		local:  gocache.New(policy.SignInTokenTTL, 10*time.Minute),
		policy: policy,
	}
}

// AccessToken returns the current access token, or "" when signed out.
func (s *DualTokenStore) AccessToken(ctx context.Context) (string, error) {
	return s.read(ctx, accessTokenKey), nil
}

// RefreshToken returns the current refresh token, or "" when signed out.
func (s *DualTokenStore) RefreshToken(ctx context.Context) (string, error) {
	return s.read(ctx, refreshTokenKey), nil
}

// SaveSignIn persists a fresh pair obtained via sign-in.
func (s *DualTokenStore) SaveSignIn(ctx context.Context, creds domain.Credentials) error {
	s.write(ctx, accessTokenKey, creds.AccessToken, tokenTTL(creds.AccessToken, s.policy.SignInTokenTTL))
	s.write(ctx, refreshTokenKey, creds.RefreshToken, s.policy.RefreshPairTTL)
	return nil
}

// SaveRefreshed atomically replaces the access token after a refresh,
// leaving the refresh token in place.
func (s *DualTokenStore) SaveRefreshed(ctx context.Context, accessToken string) error {
	s.write(ctx, accessTokenKey, accessToken, tokenTTL(accessToken, s.policy.RefreshTokenTTL))
	return nil
}

// Clear removes the credential pair from both stores.
func (s *DualTokenStore) Clear(ctx context.Context) error {
	s.local.Delete(accessTokenKey)
	s.local.Delete(refreshTokenKey)

	for _, key := range []string{accessTokenKey, refreshTokenKey} {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Named("auth").Warn("Failed to clear token from cache",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	return nil
}

// read prefers Redis and falls back to the in-memory store.
func (s *DualTokenStore) read(ctx context.Context, key string) string {
	data, err := s.cache.Get(ctx, key)
	if err == nil {
		return string(data)
	}
	if !cache.IsNotFound(err) {
		logger.Named("auth").Warn("Token cache read failed, using in-memory fallback",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	if val, ok := s.local.Get(key); ok {
		return val.(string)
	}
	return ""
}

// write stores in memory first (cannot fail), then Redis best-effort.
func (s *DualTokenStore) write(ctx context.Context, key, value string, ttl time.Duration) {
	s.local.Set(key, value, ttl)

	if err := s.cache.Set(ctx, key, []byte(value), ttl); err != nil {
		logger.Named("auth").Warn("Token cache write failed, in-memory copy kept",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// tokenTTL derives the persistence window for an access token. A JWT exp
// claim overrides the configured fallback; opaque tokens use the fallback.
func tokenTTL(token string, fallback time.Duration) time.Duration {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return fallback
	}
	if claims.ExpiresAt == nil {
		return fallback
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return fallback
	}
	return remaining
}
