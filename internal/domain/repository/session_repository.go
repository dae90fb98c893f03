package repository

import (
	"context"

	"github.com/google/uuid"

	"kda/internal/domain/entity"
	"kda/internal/errors"
)

// ErrSessionNotFound is returned when no currently valid session matches.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository handles persistence of login sessions. A session is
// never deleted; logout and salvage flip its Valid flag instead.
type SessionRepository interface {
	// Create persists a fresh valid session for the username.
	Create(ctx context.Context, username string, userAgent string) (*entity.Session, error)
	// FindValid returns the session only while it is still valid,
	// otherwise ErrSessionNotFound.
	FindValid(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Invalidate flips the session's Valid flag to false. Returns
	// ErrSessionNotFound when the session is absent or already invalid.
	Invalidate(ctx context.Context, id uuid.UUID) (*entity.Session, error)
}
