package handler

import (
	"net/http"

	deliverycontext "kda/internal/delivery/context"
	"kda/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the account endpoints of the logged-in user.
type UserHandler struct{}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Current returns the identity resolved for this request. The route sits
// behind the auth guard.
func (h *UserHandler) Current(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c)
	}

	return response.Success(c, http.StatusOK, identity)
}
