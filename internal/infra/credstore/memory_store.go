package credstore

import (
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// memoryStore is an in-memory CredentialStore for tests and throwaway runs.
type memoryStore struct {
	mu    sync.RWMutex
	token string
	user  *entity.User
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() service.CredentialStore {
	return &memoryStore{}
}

func (s *memoryStore) Save(token string, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user

	return nil
}

func (s *memoryStore) Load() (*entity.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || s.user == nil {
		return nil, "", nil
	}

	return s.user, s.token, nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	return nil
}

func (s *memoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return ""
	}

	return s.token
}
