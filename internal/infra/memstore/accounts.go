// Package memstore provides the in-memory storage backing the dev server.
// Everything lives in process memory behind RWMutexes; restarting the server
// resets all state, which is exactly what a dev fixture should do.
package memstore

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/domain/repository"
)

// AccountStore implements repository.AccountRepository in memory.
type AccountStore struct {
	mu      sync.RWMutex
	byID    map[string]*repository.Account
	byEmail map[string]string // normalized email -> id
}

// NewAccountStore is the constructor for AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		byID:    make(map[string]*repository.Account),
		byEmail: make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new account, rejecting duplicate emails.
func (s *AccountStore) Create(ctx context.Context, account *repository.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(account.User.Email)
	if _, exists := s.byEmail[key]; exists {
		return repository.ErrAccountExists
	}

	copied := *account
	s.byID[account.User.ID] = &copied
	s.byEmail[key] = account.User.ID

	return nil
}

// FindByEmail looks up an account by its login email.
func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*repository.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *s.byID[id]

	return &copied, nil
}

// FindByID looks up an account by its ID.
func (s *AccountStore) FindByID(ctx context.Context, id string) (*repository.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}
