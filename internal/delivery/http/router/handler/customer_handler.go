package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"kda/internal/delivery/http/response"
	"kda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for the customer CRUD endpoints.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// customerRequest is the create/update payload.
type customerRequest struct {
	Code    string `json:"code" validate:"required,max=50"`
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"max=1000"`
	Phone   string `json:"phone" validate:"max=50"`
}

// Create handles customer creation.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.Create(c.Request().Context(), usecase.CreateCustomerInput{
		Code:    req.Code,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

// Get returns a single customer by ID.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	customer, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// List returns one page of customers with the paging envelope.
func (h *CustomerHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	output, err := h.uc.List(c.Request().Context(), usecase.ListCustomersInput{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessPaged(c, http.StatusOK, output.Customers, &response.Paging{
		Page:     output.Page,
		PageSize: output.PageSize,
		Total:    output.Total,
	})
}

// Update applies changes to an existing customer.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.Update(c.Request().Context(), usecase.UpdateCustomerInput{
		ID:      id,
		Code:    req.Code,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, true)
}
