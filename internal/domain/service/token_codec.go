package service

import (
	"github.com/golang-jwt/jwt/v5"

	"kda/internal/domain/entity"
)

// Claims is the payload carried inside both access and refresh tokens.
// The two token kinds share one shape; only their lifetimes differ.
type Claims struct {
	entity.Identity
	jwt.RegisteredClaims
}

// TokenPair bundles the freshly signed access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenCodec signs and reads the JWT pair that carries a login's identity.
type TokenCodec interface {
	// SignPair issues a new access/refresh token pair for the identity.
	SignPair(identity *entity.Identity) (*TokenPair, error)

	// SignAccess issues a fresh access token carrying the identity,
	// used by the silent refresh path.
	SignAccess(identity *entity.Identity) (string, error)

	// Verify checks the token's signature and expiry and returns its claims.
	Verify(token string) (*Claims, error)

	// Decode extracts the claims without verifying signature or expiry.
	// Used only to salvage the session reference out of a dead token.
	Decode(token string) (*Claims, error)

	// CookieMaxAge reports the lifetime both auth cookies are set with.
	CookieMaxAge() int
}
