package ports

import "time"

// TokenClaims is what a verified session token asserts
type TokenClaims struct {
	UserID    uint
	Login     string
	ExpiresAt time.Time
}

// TokenService issues and verifies session tokens
type TokenService interface {
	Issue(userID uint, login string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
