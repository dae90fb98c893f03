// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kda/config"
	"kda/internal/domain/entity"
	"kda/internal/domain/service"
	"kda/internal/errors"
)

// Predefined token errors
var (
	// ErrTokenInvalid is returned when a token fails signature or expiry checks.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenMalformed is returned when a token cannot even be decoded.
	ErrTokenMalformed = errors.New("token malformed")
)

// jwtService is a concrete implementation of the TokenCodec interface using the JWT standard.
// Access and refresh tokens share one signing secret and one payload shape;
// only their lifetimes differ.
type jwtService struct {
	secret     string        // Secret key for signing both token kinds.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
	cookieAge  time.Duration // Lifetime both auth cookies are set with.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token codec instance.
func NewJWTService(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.JWT.SecretKey,
		accessTTL:  cfg.JWT.AccessTokenTTL,
		refreshTTL: cfg.JWT.RefreshTokenTTL,
		cookieAge:  cfg.Cookies.Expiry(),
	}, nil
}

// SignPair creates a new access token and refresh token carrying the identity.
func (s *jwtService) SignPair(identity *entity.Identity) (*service.TokenPair, error) {
	accessToken, err := s.sign(identity, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(identity, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// SignAccess creates a fresh access token for the silent refresh path.
func (s *jwtService) SignAccess(identity *entity.Identity) (string, error) {
	return s.sign(identity, s.accessTTL)
}

// Verify checks the token's signature and expiry and returns its claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrTokenInvalid, err.Error())
	}
	if !token.Valid {
		return nil, errors.WithStack(ErrTokenInvalid)
	}

	return claims, nil
}

// Decode extracts the claims without verifying signature or expiry. The
// salvage path uses it to read the session reference out of a token that
// no longer verifies.
func (s *jwtService) Decode(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(ErrTokenMalformed, err.Error())
	}

	return claims, nil
}

// CookieMaxAge reports the shared cookie lifetime in whole seconds.
func (s *jwtService) CookieMaxAge() int {
	return int(s.cookieAge / time.Second)
}

// sign is a private helper to create a JWT carrying the identity payload.
func (s *jwtService) sign(identity *entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Identity: *identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}
