// Package credstore persists the signed-in identity across process restarts,
// the desktop analog of durable browser storage.
package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const credentialsFile = "credentials.json"

// persistedSession is the on-disk layout. Token and user always travel together.
type persistedSession struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// fileStore is a file-backed CredentialStore. The file lives under the
// configured state directory with owner-only permissions.
type fileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore is the constructor for fileStore.
func NewFileStore(stateDir string) (service.CredentialStore, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create state dir")
	}

	return &fileStore{path: filepath.Join(stateDir, credentialsFile)}, nil
}

// Save writes the token and user record together.
func (s *fileStore) Save(token string, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(persistedSession{Token: token, User: user})
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "write credentials file")
	}

	return nil
}

// Load reads the persisted session. A missing or unparseable file, or a
// record missing either half, is "no session" rather than an error.
func (s *fileStore) Load() (*entity.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, "", nil
	}

	var stored persistedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, "", nil
	}
	if stored.Token == "" || stored.User == nil || stored.User.ID == "" {
		return nil, "", nil
	}

	return stored.User, stored.Token, nil
}

// Clear removes the persisted session. Removing an absent file succeeds.
func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove credentials file")
	}

	return nil
}

// Token returns the persisted token, or "" when none is stored.
func (s *fileStore) Token() string {
	user, token, _ := s.Load()
	if user == nil {
		return ""
	}

	return token
}
