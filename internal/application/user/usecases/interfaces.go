package usecases

import "github.com/linkdesk-io/linkdesk/internal/shared/authorization"

// PasswordHasher abstracts the bcrypt hasher so use cases stay free of the
// crypto dependency.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer mints access tokens for an authenticated actor.
type TokenIssuer interface {
	Generate(actor authorization.Actor) (token string, expiresIn int64, err error)
}

// LoginThrottle limits login attempts per email address.
type LoginThrottle interface {
	Allow(email string) (bool, error)
}
