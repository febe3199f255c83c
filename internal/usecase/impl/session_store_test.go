package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/credstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &entity.User{ID: "user-1", FirstName: "John", LastName: "Doe", Email: "john@example.com"}

func TestSessionStore_Login_Success(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(_ context.Context, creds service.Credentials) (*service.AuthResult, error) {
			assert.Equal(t, "john@example.com", creds.Email)

			return &service.AuthResult{Token: "token-abc", User: testUser}, nil
		},
	}
	creds := credstore.NewMemoryStore()
	store := NewSessionStore(gateway, creds, newDiscardLogger())

	session, err := store.Login(context.Background(), service.Credentials{
		Email:    "john@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "john@example.com", store.Current().User.Email)
	assert.NoError(t, store.LastError())

	// Token and user must be persisted together.
	persisted, token, err := creds.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, testUser.ID, persisted.ID)
}

func TestSessionStore_Login_FailureLeavesStateUntouched(t *testing.T) {
	loginErr := &domainerrors.APIError{Status: 401, Code: "INVALID_CREDENTIALS", Msg: "invalid email or password"}
	gateway := &fakeGateway{
		loginFn: func(context.Context, service.Credentials) (*service.AuthResult, error) {
			return nil, loginErr
		},
	}
	creds := credstore.NewMemoryStore()
	store := NewSessionStore(gateway, creds, newDiscardLogger())

	_, err := store.Login(context.Background(), service.Credentials{Email: "john@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, loginErr, store.LastError())

	persisted, _, loadErr := creds.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, persisted)
}

func TestSessionStore_Login_FailurePreservesPriorSession(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(_ context.Context, creds service.Credentials) (*service.AuthResult, error) {
			if creds.Email == "john@example.com" {
				return &service.AuthResult{Token: "token-abc", User: testUser}, nil
			}

			return nil, &domainerrors.APIError{Status: 401, Msg: "invalid email or password"}
		},
	}
	store := NewSessionStore(gateway, credstore.NewMemoryStore(), newDiscardLogger())

	_, err := store.Login(context.Background(), service.Credentials{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = store.Login(context.Background(), service.Credentials{Email: "other@example.com", Password: "nope"})
	require.Error(t, err)

	// The earlier session stays in place.
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "john@example.com", store.Current().User.Email)
	assert.Error(t, store.LastError())
}

func TestSessionStore_Login_ValidationSkipsNetwork(t *testing.T) {
	store := NewSessionStore(&fakeGateway{}, credstore.NewMemoryStore(), newDiscardLogger())

	_, err := store.Login(context.Background(), service.Credentials{Email: "", Password: ""})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, store.IsAuthenticated())
}

func TestSessionStore_Signup_Success(t *testing.T) {
	gateway := &fakeGateway{
		signupFn: func(_ context.Context, profile service.SignupProfile) (*service.AuthResult, error) {
			assert.Equal(t, "John", profile.FirstName)

			return &service.AuthResult{Token: "token-new", User: testUser}, nil
		},
	}
	store := NewSessionStore(gateway, credstore.NewMemoryStore(), newDiscardLogger())

	session, err := store.Signup(context.Background(), service.SignupProfile{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-new", session.Token)
	assert.True(t, store.IsAuthenticated())
}

func TestSessionStore_Logout_ClearsEverything(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(context.Context, service.Credentials) (*service.AuthResult, error) {
			return &service.AuthResult{Token: "token-abc", User: testUser}, nil
		},
	}
	creds := credstore.NewMemoryStore()
	store := NewSessionStore(gateway, creds, newDiscardLogger())

	_, err := store.Login(context.Background(), service.Credentials{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, store.Logout())

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Current())

	persisted, token, err := creds.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
	assert.Empty(t, token)
}

func TestSessionStore_Logout_IsIdempotent(t *testing.T) {
	store := NewSessionStore(&fakeGateway{}, credstore.NewMemoryStore(), newDiscardLogger())

	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
}

func TestSessionStore_Restore_FromPersistedCredentials(t *testing.T) {
	creds := credstore.NewMemoryStore()
	require.NoError(t, creds.Save("token-abc", testUser))

	// No gateway behavior is configured: restore must not hit the network.
	store := NewSessionStore(&fakeGateway{}, creds, newDiscardLogger())
	store.Restore()

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "john@example.com", store.Current().User.Email)
}

func TestSessionStore_Restore_EmptyStorageStaysUnauthenticated(t *testing.T) {
	store := NewSessionStore(&fakeGateway{}, credstore.NewMemoryStore(), newDiscardLogger())
	store.Restore()

	assert.False(t, store.IsAuthenticated())
	assert.NoError(t, store.LastError())
}

func TestSessionStore_SuccessClearsLastError(t *testing.T) {
	failing := true
	gateway := &fakeGateway{
		loginFn: func(context.Context, service.Credentials) (*service.AuthResult, error) {
			if failing {
				return nil, &domainerrors.APIError{Status: 401, Msg: "invalid email or password"}
			}

			return &service.AuthResult{Token: "token-abc", User: testUser}, nil
		},
	}
	store := NewSessionStore(gateway, credstore.NewMemoryStore(), newDiscardLogger())

	_, err := store.Login(context.Background(), service.Credentials{Email: "john@example.com", Password: "wrong"})
	require.Error(t, err)
	require.Error(t, store.LastError())

	failing = false
	_, err = store.Login(context.Background(), service.Credentials{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NoError(t, store.LastError())
}

func TestSessionStore_SubscribersNotified(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(context.Context, service.Credentials) (*service.AuthResult, error) {
			return &service.AuthResult{Token: "token-abc", User: testUser}, nil
		},
	}
	store := NewSessionStore(gateway, credstore.NewMemoryStore(), newDiscardLogger())

	calls := 0
	unsubscribe := store.Subscribe(func() { calls++ })

	_, err := store.Login(context.Background(), service.Credentials{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()
	require.NoError(t, store.Logout())
	assert.Equal(t, 1, calls, "unsubscribed callback must not fire")
}
