package service

// TokenService issues and validates the access tokens handed out by the dev
// server's auth endpoints.
type TokenService interface {
	Generate(userID string) (string, error)
	// Validate returns the user ID carried by a valid token.
	Validate(token string) (string, error)
}
