package auth

import (
	"crypto/subtle"

	"menumaster/internal/domain/service"
)

// plainHasher stores passwords as given. It keeps documents written by the legacy app readable.
type plainHasher struct{}

// NewPlainHasher is the constructor for plainHasher.
func NewPlainHasher() service.PasswordHasher {
	return plainHasher{}
}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Check(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
