package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "kda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec := handleError(t, domainerrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
	assert.Contains(t, rec.Body.String(), `"message":"Username or password wrong..!"`)
	assert.Contains(t, rec.Body.String(), `"errorType":"error"`)
	assert.Contains(t, rec.Body.String(), `"tokenExpired":false`)
}

func TestErrorMiddleware_WrappedAppErrorKeepsStatus(t *testing.T) {
	rec := handleError(t, errors.Wrap(domainerrors.ErrUsernameTaken, "register"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already registered")
}

func TestErrorMiddleware_ValidationErrorCarriesIssues(t *testing.T) {
	verr := domainerrors.NewValidationError(
		domainerrors.ValidationIssue{Path: "email", Message: "must be a valid email address"},
	)

	rec := handleError(t, verr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errorType":"schema"`)
	assert.Contains(t, rec.Body.String(), `"path":"email"`)
	assert.Contains(t, rec.Body.String(), `"message":"email must be a valid email address"`)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "route not found")
}

func TestErrorMiddleware_UnknownErrorFallsBack(t *testing.T) {
	rec := handleError(t, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errorType":"unknown"`)
}

func TestErrorMiddleware_DatabaseExecuteError(t *testing.T) {
	rec := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("duplicate key"), "users unique index"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errorType":"database"`)
}
