package service

import "storefront/internal/domain/entity"

// CredentialStore is the durable local storage for the signed-in identity, the
// Go analog of the browser's persistent key-value storage. The token and the
// user record are always written together and removed together.
//
// Load treats a corrupt or missing record as "no session" and returns
// (nil, "", nil) rather than an error.
type CredentialStore interface {
	Save(token string, user *entity.User) error
	Load() (user *entity.User, token string, err error)
	Clear() error
	// Token returns the persisted token, or "" when none is stored. It is
	// read on every outgoing request to attach the bearer header.
	Token() string
}
