package usecases

import "haitch/internal/shared/authorization"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues signed access tokens.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (token string, expiresIn int64, err error)
}
