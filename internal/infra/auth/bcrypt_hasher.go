package auth

import (
	"golang.org/x/crypto/bcrypt"

	"kda/config"
	"kda/internal/domain/service"
	"kda/internal/errors"
)

// bcryptHasher implements PasswordHasher on top of golang.org/x/crypto/bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a password hasher with the configured cost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash derives a bcrypt hash from the plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(hashed), nil
}

// Compare reports whether the plaintext password matches the stored hash.
func (h *bcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
