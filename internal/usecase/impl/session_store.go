// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// sessionStore implements the SessionUsecase interface. It exclusively owns
// the Session entity: all login/signup/logout paths go through here.
type sessionStore struct {
	gateway  service.CommerceGateway
	creds    service.CredentialStore
	validate *validator.Validate
	logger   *slog.Logger

	mu      sync.RWMutex
	session *entity.Session
	lastErr error

	subscribers
}

// NewSessionStore is the constructor for sessionStore.
func NewSessionStore(gateway service.CommerceGateway, creds service.CredentialStore, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionStore{
		gateway:  gateway,
		creds:    creds,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Restore reads the persisted token and user record. When both are present
// and parseable the session is authenticated without a network call; a
// corrupt or absent record starts unauthenticated with no error raised.
func (s *sessionStore) Restore() {
	user, token, err := s.creds.Load()
	if err != nil || user == nil {
		s.logger.Debug("no persisted session to restore")

		return
	}

	s.mu.Lock()
	s.session = &entity.Session{User: user, Token: token}
	s.mu.Unlock()

	s.logger.Info("session restored", slog.String("email", user.Email))
	s.notify()
}

// Login authenticates with the commerce API. On failure the prior session is
// left untouched and the failure is retained as observable state.
func (s *sessionStore) Login(ctx context.Context, creds service.Credentials) (*entity.Session, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, s.fail(errors.Wrap(domainerrors.ErrValidationFailed, err.Error()))
	}

	result, err := s.gateway.Login(ctx, creds)
	if err != nil {
		s.logger.Warn("login failed", slog.String("email", creds.Email), slog.Any("error", err))

		return nil, s.fail(err)
	}

	return s.establish(result)
}

// Signup registers a new account. Same success and failure contract as Login.
func (s *sessionStore) Signup(ctx context.Context, profile service.SignupProfile) (*entity.Session, error) {
	if err := s.validate.Struct(profile); err != nil {
		return nil, s.fail(errors.Wrap(domainerrors.ErrValidationFailed, err.Error()))
	}

	result, err := s.gateway.Signup(ctx, profile)
	if err != nil {
		s.logger.Warn("signup failed", slog.String("email", profile.Email), slog.Any("error", err))

		return nil, s.fail(err)
	}

	return s.establish(result)
}

// establish stores the token and user record both in memory and in durable
// storage, always together.
func (s *sessionStore) establish(result *service.AuthResult) (*entity.Session, error) {
	if result == nil || result.User == nil || result.Token == "" {
		return nil, s.fail(errors.New("auth response missing token or user"))
	}

	if err := s.creds.Save(result.Token, result.User); err != nil {
		return nil, s.fail(errors.Wrap(err, "persist session"))
	}

	session := &entity.Session{User: result.User, Token: result.Token}

	s.mu.Lock()
	s.session = session
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Info("session established", slog.String("email", result.User.Email))
	s.notify()

	return session, nil
}

// Logout clears the in-memory session and removes the persisted credentials.
// It is idempotent and always succeeds locally.
func (s *sessionStore) Logout() error {
	s.mu.Lock()
	s.session = nil
	s.lastErr = nil
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		// Local state is already cleared; the stale file is the only residue.
		s.logger.Warn("failed to clear persisted credentials", slog.Any("error", err))
	}

	s.logger.Info("session cleared")
	s.notify()

	return nil
}

// Current returns the active session, or nil when unauthenticated.
func (s *sessionStore) Current() *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// IsAuthenticated reports whether a session is active.
func (s *sessionStore) IsAuthenticated() bool {
	return s.Current().Authenticated()
}

// LastError returns the retained failure from the most recent operation, or
// nil after a successful operation.
func (s *sessionStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr
}

// Subscribe registers a callback invoked after every state change.
func (s *sessionStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.add(fn)
}

// fail retains err as observable state and returns it for the caller.
func (s *sessionStore) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	s.notify()

	return err
}
