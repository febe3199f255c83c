// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// SessionUsecase tracks whether a user is authenticated and exposes the
// identity and token to the rest of the application. State changes are pushed
// to subscribers; the last failure is retained as observable state.
type SessionUsecase interface {
	// Restore loads a persisted session at startup without a network call.
	// A corrupt or absent record leaves the session unauthenticated.
	Restore()

	Login(ctx context.Context, creds service.Credentials) (*entity.Session, error)
	Signup(ctx context.Context, profile service.SignupProfile) (*entity.Session, error)
	// Logout clears the in-memory session and the persisted credentials.
	// It always succeeds locally regardless of prior state.
	Logout() error

	Current() *entity.Session
	IsAuthenticated() bool
	LastError() error

	// Subscribe registers a callback invoked after every state change and
	// returns a function removing the subscription.
	Subscribe(fn func()) (unsubscribe func())
}
