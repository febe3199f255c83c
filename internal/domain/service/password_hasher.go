package service

// PasswordHasher abstracts password hashing so the account store never sees
// plaintext handling details.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
