package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kda/config"
	deliverycontext "kda/internal/delivery/context"
	"kda/internal/delivery/http/cookie"
	"kda/internal/domain/entity"
	mockSvc "kda/internal/mocks/service"
	mockUC "kda/internal/mocks/usecase"
	"kda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCookieManager(t *testing.T) *cookie.Manager {
	codec := mockSvc.NewMockTokenCodec(t)
	codec.EXPECT().CookieMaxAge().Return(3600)

	// Development config keeps cookies non-Secure in tests.
	return cookie.NewManager(&config.Config{}, codec)
}

func newTestIdentity() *entity.Identity {
	session := entity.SessionSnapshot{ID: uuid.New(), Valid: true, Username: "mastika"}

	return &entity.Identity{
		Username: "mastika",
		Email:    "mastika@gmail.com",
		Name:     "mastika",
		Session:  session,
		Roles:    entity.Roles{entity.RoleUser},
	}
}

func runSessionMiddleware(t *testing.T, authUC usecase.AuthUsecase, req *http.Request) (*httptest.ResponseRecorder, *entity.Identity) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewSessionMiddleware(authUC, newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen *entity.Identity
	handler := mw.Resolve(func(c echo.Context) error {
		seen = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, seen
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}

	return nil
}

func TestSessionMiddleware_AuthenticatedRequestPassesIdentity(t *testing.T) {
	identity := newTestIdentity()

	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Resolve(mock.Anything, usecase.ResolveInput{AccessToken: "access-token"}).
		Return(&usecase.Resolution{Identity: identity}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/isAuthenticated", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessToken, Value: "access-token"})

	rec, seen := runSessionMiddleware(t, authUC, req)

	require.NotNil(t, seen)
	assert.Equal(t, "mastika", seen.Username)
	// No cookie mutations on the steady-state authenticated path.
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_SilentRefreshReplacesOnlyAccessCookie(t *testing.T) {
	identity := newTestIdentity()

	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Resolve(mock.Anything, usecase.ResolveInput{
			AccessToken:  "expired-access",
			RefreshToken: "refresh-token",
		}).
		Return(&usecase.Resolution{Identity: identity, Refreshed: "fresh-access"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessToken, Value: "expired-access"})
	req.AddCookie(&http.Cookie{Name: cookie.RefreshToken, Value: "refresh-token"})

	rec, seen := runSessionMiddleware(t, authUC, req)

	require.NotNil(t, seen)

	cookies := rec.Result().Cookies()
	accessCookie := cookieByName(cookies, cookie.AccessToken)
	require.NotNil(t, accessCookie)
	assert.Equal(t, "fresh-access", accessCookie.Value)
	assert.True(t, accessCookie.HttpOnly)

	// The refresh token cookie is not rotated.
	assert.Nil(t, cookieByName(cookies, cookie.RefreshToken))
}

func TestSessionMiddleware_UnauthenticatedOutcomeClearsCookieSet(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(&usecase.Resolution{Clear: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/isAuthenticated", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessToken, Value: "stale"})
	req.AddCookie(&http.Cookie{Name: cookie.RefreshToken, Value: "stale"})

	rec, seen := runSessionMiddleware(t, authUC, req)

	assert.Nil(t, seen)

	cookies := rec.Result().Cookies()

	// Token cookies are expired outright.
	for _, name := range []string{cookie.AccessToken, cookie.RefreshToken, cookie.ActiveUser} {
		ck := cookieByName(cookies, name)
		require.NotNil(t, ck, name)
		assert.Empty(t, ck.Value, name)
		assert.Negative(t, ck.MaxAge, name)
	}

	// The authorized mirror flips to false but keeps its lifetime.
	authorized := cookieByName(cookies, cookie.Authorized)
	require.NotNil(t, authorized)
	assert.Equal(t, "false", authorized.Value)
	assert.Positive(t, authorized.MaxAge)
}

func TestSessionMiddleware_RequireAuthRejectsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewSessionMiddleware(mockUC.NewMockAuthUsecase(t), newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	handler := mw.RequireAuth(func(c echo.Context) error {
		t.Fatal("handler must not run for anonymous requests")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
	assert.Contains(t, rec.Body.String(), `"tokenExpired":false`)
}

func TestSessionMiddleware_RequireRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	identity := newTestIdentity()
	deliverycontext.SetIdentity(c, identity)

	mw := NewSessionMiddleware(mockUC.NewMockAuthUsecase(t), newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	adminOnly := mw.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, adminOnly(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req, rec2)
	deliverycontext.SetIdentity(c2, identity)

	userAllowed := mw.RequireRole(entity.RoleUser)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, userAllowed(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
}
