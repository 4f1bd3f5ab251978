package service

import (
	"context"
	"fmt"
	"sync"

	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/auth/domain"
	"shoedash-gateway/internal/features/auth/ports"

	"go.uber.org/zap"
)

// AuthService owns the staff session lifecycle: sign-in persists the
// credential pair, sign-out clears it, and the pipeline's session-expired
// hook lands here. Exactly one session exists per process.
type AuthService struct {
	provider ports.AuthProvider
	store    ports.SessionStore

	mu   sync.RWMutex
	user *domain.StaffUser
}

// NewAuthService creates a new AuthService.
func NewAuthService(provider ports.AuthProvider, store ports.SessionStore) *AuthService {
	return &AuthService{
		provider: provider,
		store:    store,
	}
}

// SignIn authenticates against the backend and persists the token pair
// under the sign-in TTL policy.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*domain.StaffUser, error) {
	user, creds, err := s.provider.SignIn(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveSignIn(ctx, creds); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	logger.Named("auth").Info("Staff signed in",
		zap.String("username", user.Username),
		zap.Int("permissions", len(user.Permissions)),
	)
	return user, nil
}

// SignOut clears the session and the persisted credential pair.
func (s *AuthService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	logger.Named("auth").Info("Staff signed out")
	return nil
}

// CurrentUser returns the signed-in staff user.
func (s *AuthService) CurrentUser() (*domain.StaffUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, domain.ErrNotSignedIn
	}
	return s.user, nil
}

// HandleSessionExpired is the pipeline's session-expired hook: the transport
// has already cleared the credential pair, so only the in-process user state
// remains to drop. The dashboard learns about it through the next 401.
func (s *AuthService) HandleSessionExpired() {
	s.mu.Lock()
	signedIn := s.user != nil
	s.user = nil
	s.mu.Unlock()

	if signedIn {
		logger.Named("auth").Warn("Staff session expired, forced sign-out")
	}
}
