package context

import (
	"github.com/labstack/echo/v4"

	"kda/internal/domain/entity"
)

// SetIdentity stores the resolved identity in echo.Context. It is called
// once per request by the session middleware.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the resolved identity from echo.Context. It
// returns nil when the request is unauthenticated.
func GetIdentity(c echo.Context) *entity.Identity {
	val := c.Get(string(KeyIdentity))
	if identity, ok := val.(*entity.Identity); ok {
		return identity
	}

	return nil
}
