package middleware

import (
	"log/slog"
	"slices"

	deliverycontext "kda/internal/delivery/context"
	"kda/internal/delivery/http/cookie"
	"kda/internal/delivery/http/response"
	"kda/internal/domain/entity"
	"kda/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves every request's cookies into an identity
// before routing. It owns all auth cookie mutations on the inbound path:
// a silent refresh replaces the access token cookie, and any
// unauthenticated outcome clears the whole cookie set.
type SessionMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookies     *cookie.Manager
	logger      *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUsecase usecase.AuthUsecase, cookies *cookie.Manager, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		authUsecase: authUsecase,
		cookies:     cookies,
		logger:      logger,
	}
}

// Resolve runs the lifecycle decision for the request. It never rejects;
// unauthenticated requests continue with no identity so public routes
// keep working and guarded routes fail in their guard.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accessToken, refreshToken := cookie.ReadTokens(c)

		resolution, err := m.authUsecase.Resolve(c.Request().Context(), usecase.ResolveInput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		})
		if err != nil {
			return err
		}

		if resolution.Clear {
			// Every unauthenticated outcome drops the cookie set, even a
			// bare anonymous request, so the authorized mirror is never
			// stale.
			m.cookies.Clear(c)

			return next(c)
		}

		if resolution.Refreshed != "" {
			m.cookies.SetAccessToken(c, resolution.Refreshed)
		}

		deliverycontext.SetIdentity(c, resolution.Identity)

		return next(c)
	}
}

// RequireAuth rejects requests that resolved to no identity.
// It must be used AFTER the Resolve middleware.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetIdentity(c) == nil {
			return response.Unauthorized(c)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the identity's roles.
// It must be used AFTER the Resolve middleware.
func (m *SessionMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return response.Unauthorized(c)
			}

			if !slices.Contains(identity.Roles, requiredRole) {
				return response.Unauthorized(c)
			}

			return next(c)
		}
	}
}
