package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kda/config"
	deliverycontext "kda/internal/delivery/context"
	"kda/internal/delivery/http/cookie"
	"kda/internal/delivery/http/validator"
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

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestCookieManager(t *testing.T) *cookie.Manager {
	t.Helper()
	codec := mockSvc.NewMockTokenCodec(t)
	codec.EXPECT().CookieMaxAge().Return(3600)

	return cookie.NewManager(&config.Config{}, codec)
}

func newTestAuthOutput() *usecase.AuthOutput {
	session := entity.SessionSnapshot{ID: uuid.New(), Valid: true, Username: "mastika"}

	return &usecase.AuthOutput{
		Identity: &entity.Identity{
			Username: "mastika",
			Email:    "mastika@gmail.com",
			Name:     "mastika",
			Session:  session,
			Roles:    entity.Roles{entity.RoleUser},
		},
		Tokens: &usecase.TokenCookies{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}

	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho(t)

	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(newTestAuthOutput(), nil)

	h := NewAuthHandler(authUC, newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"username":"mastika","password":"811899","name":"mastika","email":"mastika@gmail.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), `"username":"mastika"`)

	cookies := rec.Result().Cookies()
	accessCookie := findCookie(cookies, cookie.AccessToken)
	require.NotNil(t, accessCookie)
	assert.Equal(t, "access-token", accessCookie.Value)
	assert.True(t, accessCookie.HttpOnly)

	refreshCookie := findCookie(cookies, cookie.RefreshToken)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "refresh-token", refreshCookie.Value)
	assert.True(t, refreshCookie.HttpOnly)

	activeUser := findCookie(cookies, cookie.ActiveUser)
	require.NotNil(t, activeUser)
	assert.False(t, activeUser.HttpOnly)
	assert.Contains(t, activeUser.Value, "mastika")

	authorized := findCookie(cookies, cookie.Authorized)
	require.NotNil(t, authorized)
	assert.Equal(t, "true", authorized.Value)
	assert.False(t, authorized.HttpOnly)
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newTestEcho(t)

	h := NewAuthHandler(mockUC.NewMockAuthUsecase(t), newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"username":"mastika","password":"811899","name":"mastika","email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestAuthHandler_Login_ShortCircuitsWhenAlreadyAuthenticated(t *testing.T) {
	e := newTestEcho(t)

	// No Login expectation: the usecase must not be touched.
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"mastika","password":"811899"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	output := newTestAuthOutput()
	deliverycontext.SetIdentity(c, output.Identity)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"mastika"`)
	// No session was opened, so no cookies change.
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho(t)

	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(newTestAuthOutput(), nil)

	h := NewAuthHandler(authUC, newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"mastika","password":"811899"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	authorized := findCookie(rec.Result().Cookies(), cookie.Authorized)
	require.NotNil(t, authorized)
	assert.Equal(t, "true", authorized.Value)
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	e := newTestEcho(t)

	output := newTestAuthOutput()

	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Logout(mock.Anything, output.Identity.Session.ID.String()).
		Return(nil)

	h := NewAuthHandler(authUC, newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, output.Identity)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":"Logged out successfully"`)

	cookies := rec.Result().Cookies()
	accessCookie := findCookie(cookies, cookie.AccessToken)
	require.NotNil(t, accessCookie)
	assert.Empty(t, accessCookie.Value)

	authorized := findCookie(cookies, cookie.Authorized)
	require.NotNil(t, authorized)
	assert.Equal(t, "false", authorized.Value)
}

func TestAuthHandler_IsAuthenticated(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(mockUC.NewMockAuthUsecase(t), newTestCookieManager(t), slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("anonymous is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/isAuthenticated", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.IsAuthenticated(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"error"`)
	})

	t.Run("authenticated gets the identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/isAuthenticated", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		deliverycontext.SetIdentity(c, newTestAuthOutput().Identity)

		require.NoError(t, h.IsAuthenticated(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"success"`)
		assert.Contains(t, rec.Body.String(), `"username":"mastika"`)
	})
}
