package entity

// Session is the client-side record of the currently authenticated user
// and their access token. A nil Session means no one is signed in.
type Session struct {
	User  *User
	Token string
}

// Authenticated reports whether the session carries both an identity and a token.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}
