// Package cookie centralizes the four auth cookies the API maintains.
// Two carry tokens and are httpOnly; two mirror auth state for the
// browser application and stay script-readable.
package cookie

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"kda/config"
	"kda/internal/domain/entity"
	"kda/internal/domain/service"
)

// Cookie names
const (
	AccessToken  = "accessToken"
	RefreshToken = "refreshToken"
	ActiveUser   = "activeUser"
	Authorized   = "authorized"
)

// Manager writes and clears the auth cookie set. All four cookies share
// one max age so they expire together.
type Manager struct {
	maxAge int
	secure bool
}

// NewManager builds the cookie manager. Cookies are marked Secure outside
// the development environment.
func NewManager(cfg *config.Config, codec service.TokenCodec) *Manager {
	return &Manager{
		maxAge: codec.CookieMaxAge(),
		secure: !cfg.IsDevelopment(),
	}
}

// SetAuthenticated writes the full cookie set after registration or login.
func (m *Manager) SetAuthenticated(c echo.Context, identity *entity.Identity, accessToken, refreshToken string) {
	m.set(c, AccessToken, accessToken, true)
	m.set(c, RefreshToken, refreshToken, true)
	m.setActiveUser(c, identity)
	m.set(c, Authorized, "true", false)
}

// SetAccessToken replaces only the access token after a silent refresh.
// The refresh token cookie is left untouched.
func (m *Manager) SetAccessToken(c echo.Context, accessToken string) {
	m.set(c, AccessToken, accessToken, true)
}

// Clear drops both token cookies and the identity mirror, and flips
// authorized to false. The authorized cookie keeps its lifetime so the
// browser application can read the new state.
func (m *Manager) Clear(c echo.Context) {
	m.expire(c, AccessToken, true)
	m.expire(c, RefreshToken, true)
	m.expire(c, ActiveUser, false)
	m.set(c, Authorized, "false", false)
}

// ReadTokens returns the raw token cookie values, empty when absent.
func ReadTokens(c echo.Context) (accessToken, refreshToken string) {
	if ck, err := c.Cookie(AccessToken); err == nil {
		accessToken = ck.Value
	}
	if ck, err := c.Cookie(RefreshToken); err == nil {
		refreshToken = ck.Value
	}

	return accessToken, refreshToken
}

func (m *Manager) setActiveUser(c echo.Context, identity *entity.Identity) {
	payload, err := json.Marshal(identity)
	if err != nil {
		// Identity marshals from plain fields; this cannot fail in practice.
		return
	}

	// JSON carries characters a cookie value may not, so it travels
	// percent-encoded the same way browser frameworks store it.
	m.set(c, ActiveUser, url.QueryEscape(string(payload)), false)
}

func (m *Manager) set(c echo.Context, name, value string, httpOnly bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   m.maxAge,
		HttpOnly: httpOnly,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) expire(c echo.Context, name string, httpOnly bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: httpOnly,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
