// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "kda/internal/delivery/context"
	"kda/internal/delivery/http/cookie"
	"kda/internal/delivery/http/response"
	"kda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the auth endpoints.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	cookies *cookie.Manager
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cookies *cookie.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		cookies: cookies,
		logger:  logger,
	}
}

// registerRequest is the registration payload.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

// loginRequest is the login payload.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles account creation. A successful registration behaves
// like a first login: the session opens and the full cookie set is written.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Name:      req.Name,
		Email:     req.Email,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetAuthenticated(c, output.Identity, output.Tokens.AccessToken, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusOK, output.Identity)
}

// Login handles credential login. A request that already carries a live
// identity short-circuits: no new session is opened and the cookies are
// left as they are.
func (h *AuthHandler) Login(c echo.Context) error {
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		return response.Success(c, http.StatusOK, identity)
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetAuthenticated(c, output.Identity, output.Tokens.AccessToken, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusOK, output.Identity)
}

// Logout invalidates the caller's session and drops the cookie set.
// The route sits behind the auth guard, so an identity is present.
func (h *AuthHandler) Logout(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c)
	}

	if err := h.uc.Logout(c.Request().Context(), identity.Session.ID.String()); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, "Logged out successfully")
}

// IsAuthenticated returns the resolved identity. The route sits behind
// the auth guard, so an unauthenticated caller is rejected with 401
// before reaching here.
func (h *AuthHandler) IsAuthenticated(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c)
	}

	return response.Success(c, http.StatusOK, identity)
}
