package impl

import (
	"context"
	"log/slog"

	deliverycontext "kda/internal/delivery/context"
	"kda/internal/domain/entity"
	domainerrors "kda/internal/domain/errors"
	"kda/internal/domain/repository"
	"kda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new customer record.
func (srv *customerService) Create(ctx context.Context, input usecase.CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Code:    input.Code,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerCodeTaken) {
			return nil, domainerrors.ErrConflict.WithMessage("customer code already exists")
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer created", slog.String("code", customer.Code))

	return customer, nil
}

// Get retrieves one customer by ID.
func (srv *customerService) Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// List returns one page of customers plus the paging envelope fields.
func (srv *customerService) List(ctx context.Context, input usecase.ListCustomersInput) (*usecase.ListCustomersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	customers, total, err := srv.customerRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return &usecase.ListCustomersOutput{
		Customers: customers,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies changes to an existing customer and returns the result.
func (srv *customerService) Update(ctx context.Context, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:      input.ID,
		Code:    input.Code,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		switch {
		case errors.Is(err, repository.ErrCustomerNotFound):
			return nil, domainerrors.ErrNotFound.WithMessage("customer not found")
		case errors.Is(err, repository.ErrCustomerCodeTaken):
			return nil, domainerrors.ErrConflict.WithMessage("customer code already exists")
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	return srv.Get(ctx, input.ID)
}

// Delete removes a customer.
func (srv *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrNotFound.WithMessage("customer not found")
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	srv.log(ctx).Info("Customer deleted", slog.String("id", id.String()))

	return nil
}
