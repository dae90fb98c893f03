package repository

import (
	"context"

	"kda/internal/domain/entity"
	"kda/internal/errors"
)

// Predefined repository errors
var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when a unique user field collides
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository handles persistence of user accounts.
type UserRepository interface {
	// Create persists a new user together with its role links.
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername returns the user and its roles, or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// CountByUsername returns how many accounts carry the username.
	CountByUsername(ctx context.Context, username string) (int64, error)
	// CountByEmail returns how many accounts carry the email address.
	CountByEmail(ctx context.Context, email string) (int64, error)
}
