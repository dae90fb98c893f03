package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the durable server-side anchor for one logged-in device or
// browser instance. Every successful registration or login mints exactly
// one new Session; tokens derived from it embed a snapshot of it.
//
// The Valid flag is the single source of truth for whether tokens
// referencing this session may be honored: a cryptographically sound,
// unexpired token whose session is invalid is treated as unauthenticated.
// Sessions are never deleted in normal operation, only invalidated.
type Session struct {
	ID        uuid.UUID // Opaque unique identifier embedded into tokens.
	Username  string    // Owner of the session (many sessions per user).
	Valid     bool      // Starts true; flipped false on logout or salvage invalidation.
	UserAgent string    // Diagnostic only; the client's User-Agent at creation.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionSnapshot is the session as it was at token-minting time. It is a
// value captured inside the token payload, not a live reference; the
// registry is always consulted for the current Valid state.
type SessionSnapshot struct {
	ID       uuid.UUID `json:"id"`
	Valid    bool      `json:"valid"`
	Username string    `json:"username"`
}

// Snapshot captures the session state for embedding into a token payload.
func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:       s.ID,
		Valid:    s.Valid,
		Username: s.Username,
	}
}
