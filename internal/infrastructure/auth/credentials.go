package auth

import "crypto/subtle"

// CredentialStore validates a username/password pair against the set
// of registered principals. The production implementation is backed by
// configuration; secrets are never compiled in.
type CredentialStore interface {
	Authenticate(username, password string) bool
}

// StaticCredentialStore holds the single configured staff credential.
type StaticCredentialStore struct {
	username string
	password string
}

func NewStaticCredentialStore(username, password string) *StaticCredentialStore {
	return &StaticCredentialStore{username: username, password: password}
}

func (s *StaticCredentialStore) Authenticate(username, password string) bool {
	if s.password == "" {
		// Refuse to authenticate against an unset password rather than
		// letting an empty config double as a wildcard credential.
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}
