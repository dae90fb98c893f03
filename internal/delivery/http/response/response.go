package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "kda/internal/domain/errors"
)

// SuccessBody is the unified success envelope.
type SuccessBody struct {
	Status string  `json:"status"` // Always "success".
	Data   any     `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// ErrorBody is the unified error envelope. TokenExpired is always false;
// clients watch the cookie mutations, not this flag, to detect auth loss.
type ErrorBody struct {
	Status       string                         `json:"status"` // Always "error".
	Message      string                         `json:"message"`
	ErrorType    domainerrors.ErrorType         `json:"errorType"`
	Issues       []domainerrors.ValidationIssue `json:"issues,omitempty"`
	TokenExpired bool                           `json:"tokenExpired"`
}

// Paging describes one page of a list response.
type Paging struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// Success writes a success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessBody{
		Status: "success",
		Data:   data,
	})
}

// SuccessPaged writes a success envelope with paging information.
func SuccessPaged(c echo.Context, statusCode int, data any, paging *Paging) error {
	return c.JSON(statusCode, SuccessBody{
		Status: "success",
		Data:   data,
		Paging: paging,
	})
}

// Error writes an error envelope.
func Error(c echo.Context, statusCode int, message string, errorType domainerrors.ErrorType) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Status:    "error",
		Message:   message,
		ErrorType: errorType,
	})
}

// ValidationFailed writes the schema error envelope with its issue list.
func ValidationFailed(c echo.Context, verr *domainerrors.ValidationError) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{
		Status:    "error",
		Message:   verr.Message(),
		ErrorType: domainerrors.TypeSchema,
		Issues:    verr.Issues(),
	})
}

// Unauthorized writes the 401 envelope.
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, "Unauthorized", domainerrors.TypeError)
}

// InternalServerError writes the 500 envelope.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "internal server error", domainerrors.TypeUnknown)
}
