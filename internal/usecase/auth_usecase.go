// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kda/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string
	Password  string
	Name      string
	Email     string
	UserAgent string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username  string
	Password  string
	UserAgent string
}

// ResolveInput carries the raw cookie material of an incoming request.
// Either token may be empty when its cookie is absent.
type ResolveInput struct {
	AccessToken  string
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the established identity and the freshly signed
// token pair after registration or login.
type AuthOutput struct {
	Identity *entity.Identity
	Tokens   *TokenCookies
}

// TokenCookies bundles the token values destined for cookies. RefreshToken
// is empty when only the access token is being replaced.
type TokenCookies struct {
	AccessToken  string
	RefreshToken string
}

// Resolution is the outcome of resolving a request's cookies into an
// identity. Exactly one of Identity or Clear describes the outcome:
// an authenticated request carries an Identity; an unauthenticated one
// has Clear set so the transport layer drops the stale cookies. Refreshed
// carries a replacement access token when a silent refresh succeeded.
type Resolution struct {
	Identity  *entity.Identity
	Refreshed string
	Clear     bool
}

// Authenticated reports whether the request resolved to an identity.
func (r *Resolution) Authenticated() bool {
	return r.Identity != nil
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates the account, grants the default role, opens a
	// session and signs its token pair, all atomically.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials, opens a fresh session and signs its
	// token pair. Unknown username and wrong password are reported
	// identically.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Logout invalidates the session. It fails when the session is
	// absent or no longer valid.
	Logout(ctx context.Context, sessionID string) error

	// Resolve turns a request's cookie material into a Resolution,
	// silently refreshing an expired access token when the refresh
	// token still backs a valid session. Resolve never returns a
	// transport-visible error for bad tokens; those outcomes are
	// expressed through the Resolution itself.
	Resolve(ctx context.Context, input ResolveInput) (*Resolution, error)
}
