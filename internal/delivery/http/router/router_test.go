package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kda/config"
	"kda/internal/delivery/http/cookie"
	"kda/internal/delivery/http/middleware"
	"kda/internal/delivery/http/router/handler"
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

// newTestRouter wires the full route table over mocked usecases so requests
// travel the same middleware chain they would in production.
func newTestRouter(t *testing.T, authUC *mockUC.MockAuthUsecase) *echo.Echo {
	t.Helper()

	codec := mockSvc.NewMockTokenCodec(t)
	codec.EXPECT().CookieMaxAge().Return(3600)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cookies := cookie.NewManager(&config.Config{}, codec)

	r := NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(authUC, cookies, logger),
		UserHandler:       handler.NewUserHandler(),
		CustomerHandler:   handler.NewCustomerHandler(mockUC.NewMockCustomerUsecase(t), logger),
		SessionMiddleware: middleware.NewSessionMiddleware(authUC, cookies, logger),
	})

	e := echo.New()
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return e
}

func newRouterAuthOutput() *usecase.AuthOutput {
	return &usecase.AuthOutput{
		Identity: &entity.Identity{
			Username: "mastika",
			Email:    "mastika@gmail.com",
			Name:     "mastika",
			Session:  entity.SessionSnapshot{ID: uuid.New(), Valid: true, Username: "mastika"},
			Roles:    entity.Roles{entity.RoleUser},
		},
		Tokens: &usecase.TokenCookies{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}
}

func TestRouter_RegisterSkipsSessionResolution(t *testing.T) {
	// No Resolve expectation: registration must not run the session
	// middleware, whose clearing would duplicate the handler's cookies.
	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(newRouterAuthOutput(), nil)

	e := newTestRouter(t, authUC)

	body := `{"username":"mastika","password":"811899","name":"mastika","email":"mastika@gmail.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var accessCookies []*http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookie.AccessToken {
			accessCookies = append(accessCookies, ck)
		}
	}
	// Exactly one Set-Cookie for the access token, the real one. A clear
	// followed by a set would leave conflicting duplicate headers.
	require.Len(t, accessCookies, 1)
	assert.Equal(t, "access-token", accessCookies[0].Value)
	assert.Positive(t, accessCookies[0].MaxAge)
}

func TestRouter_IsAuthenticatedRejectsDeadSession(t *testing.T) {
	// A stale access token whose session has been logged out resolves to
	// Clear; the guard must answer 401, never a success envelope.
	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Resolve(mock.Anything, usecase.ResolveInput{AccessToken: "stale-access"}).
		Return(&usecase.Resolution{Clear: true}, nil)

	e := newTestRouter(t, authUC)

	req := httptest.NewRequest(http.MethodGet, "/api/isAuthenticated", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessToken, Value: "stale-access"})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestRouter_IsAuthenticatedReturnsIdentity(t *testing.T) {
	output := newRouterAuthOutput()

	authUC := mockUC.NewMockAuthUsecase(t)
	authUC.EXPECT().
		Resolve(mock.Anything, usecase.ResolveInput{AccessToken: "live-access"}).
		Return(&usecase.Resolution{Identity: output.Identity}, nil)

	e := newTestRouter(t, authUC)

	req := httptest.NewRequest(http.MethodGet, "/api/isAuthenticated", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessToken, Value: "live-access"})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), `"username":"mastika"`)
}
